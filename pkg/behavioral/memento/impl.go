/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package memento

import "fmt"

func (m *concreteMemento) State() string {
	return m.state
}

func (m *concreteMemento) Name() string {
	return fmt.Sprintf("%s / (%s...)", m.date, m.state)
}

func (m *concreteMemento) Date() string {
	return m.date
}

func (o *Originator) State() string {
	return o.state
}

func (o *Originator) DoSomething() {
	fmt.Fprintln(o.w, "Originator: I'm doing something important.")
	o.state = o.randomState()
	fmt.Fprintf(o.w, "Originator: and my state has changed to: %s\n", o.state)
}

func (o *Originator) randomState() string {
	return states[o.intn(randomStateSpan)%len(states)]
}

// Save takes a snapshot, the snapshot date is printed
func (o *Originator) Save() IMemento {
	m := &concreteMemento{
		state: o.state,
		date:  o.clock.Now().UTC().Format(dateLayout),
	}
	fmt.Fprintln(o.w, m.date)
	return m
}

func (o *Originator) Restore(m IMemento) {
	o.state = m.State()
	fmt.Fprintf(o.w, "Originator: My state has changed to %s\n", o.state)
}

func (c *Caretaker) Backup() {
	fmt.Fprintln(c.w, "\nCaretaker: Saving Originator's state...")
	c.mementos = append(c.mementos, c.originator.Save())
}

// Undo restores the latest snapshot and forgets it. No-op if there are no snapshots
func (c *Caretaker) Undo() {
	if len(c.mementos) == 0 {
		return
	}
	last := len(c.mementos) - 1
	m := c.mementos[last]
	c.mementos[last] = nil
	c.mementos = c.mementos[:last]

	fmt.Fprintf(c.w, "Caretaker: Restoring state to: %s\n", m.Name())
	c.originator.Restore(m)
}

func (c *Caretaker) ShowHistory() {
	fmt.Fprintln(c.w, "Caretaker: Here's the list of mementos:")
	for _, m := range c.mementos {
		fmt.Fprintln(c.w, m.Name())
	}
}

// Len returns the number of kept snapshots
func (c *Caretaker) Len() int {
	return len(c.mementos)
}
