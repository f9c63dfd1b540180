/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package mediator

import "io"

func NewComponent1(w io.Writer) *Component1 {
	return &Component1{baseComponent{w: w}}
}

func NewComponent2(w io.Writer) *Component2 {
	return &Component2{baseComponent{w: w}}
}

// NewConcreteMediator sets itself as the mediator of both components
func NewConcreteMediator(w io.Writer, c1 *Component1, c2 *Component2) *ConcreteMediator {
	m := &ConcreteMediator{
		w:          w,
		component1: c1,
		component2: c2,
	}
	c1.SetMediator(m)
	c2.SetMediator(m)
	return m
}
