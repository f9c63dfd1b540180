/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package mediator

import "fmt"

func (c *baseComponent) SetMediator(mediator IMediator) {
	c.mediator = mediator
}

func (c *baseComponent) notify(sender any, event Event) {
	if c.mediator != nil {
		c.mediator.Notify(sender, event)
	}
}

func (c *Component1) DoA() {
	fmt.Fprintln(c.w, "Component 1 does A")
	c.notify(c, EventA)
}

func (c *Component1) DoB() {
	fmt.Fprintln(c.w, "Component 1 does B")
	c.notify(c, EventB)
}

func (c *Component2) DoC() {
	fmt.Fprintln(c.w, "Component 2 does C")
	c.notify(c, EventC)
}

func (c *Component2) DoD() {
	fmt.Fprintln(c.w, "Component 2 does D")
	c.notify(c, EventD)
}

func (m *ConcreteMediator) Notify(_ any, event Event) {
	switch event {
	case EventA:
		m.reactsOn(event)
		m.component2.DoC()
	case EventD:
		m.reactsOn(event)
		m.component1.DoB()
		m.component2.DoC()
	}
}

func (m *ConcreteMediator) reactsOn(event Event) {
	fmt.Fprintf(m.w, "Mediator reacts on %s and triggers the following operations:\n", event)
}
