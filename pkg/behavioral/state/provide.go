/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package state

import "io"

// NewContext transitions to the initial state right away
func NewContext(w io.Writer, initial IState) *Context {
	c := &Context{w: w}
	c.TransitionTo(initial)
	return c
}

func NewConcreteStateA(w io.Writer) *ConcreteStateA {
	return &ConcreteStateA{baseState{w: w}}
}

func NewConcreteStateB(w io.Writer) *ConcreteStateB {
	return &ConcreteStateB{baseState{w: w}}
}
