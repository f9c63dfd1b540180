/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package state

import "fmt"

// TransitionTo replaces the active state unconditionally
func (c *Context) TransitionTo(state IState) {
	fmt.Fprintf(c.w, "Context: Transition to %s\n", state.Name())
	c.state = state
	c.state.SetContext(c)
}

// State returns the active state
func (c *Context) State() IState {
	return c.state
}

func (c *Context) Request1() {
	if c.state != nil {
		c.state.Handle1()
	}
}

func (c *Context) Request2() {
	if c.state != nil {
		c.state.Handle2()
	}
}

func (s *baseState) SetContext(context *Context) {
	s.context = context
}

func (s *ConcreteStateA) Name() string {
	return "ConcreteStateA"
}

func (s *ConcreteStateA) Handle1() {
	fmt.Fprintln(s.w, "ConcreteStateA handles request1")
	fmt.Fprintln(s.w, "ConcreteStateA wants to change the state of the context.")
	s.context.TransitionTo(NewConcreteStateB(s.w))
}

func (s *ConcreteStateA) Handle2() {
	fmt.Fprintln(s.w, "ConcreteStateA handles request2.")
}

func (s *ConcreteStateB) Name() string {
	return "ConcreteStateB"
}

func (s *ConcreteStateB) Handle1() {
	fmt.Fprintln(s.w, "ConcreteStateB handles request1.")
}

func (s *ConcreteStateB) Handle2() {
	fmt.Fprintln(s.w, "ConcreteStateB handles request2")
	fmt.Fprintln(s.w, "ConcreteStateB wants to change the state of the context.")
	s.context.TransitionTo(NewConcreteStateA(s.w))
}
