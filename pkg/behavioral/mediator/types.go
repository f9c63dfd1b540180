/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package mediator

import "io"

type baseComponent struct {
	w        io.Writer
	mediator IMediator
}

type Component1 struct {
	baseComponent
}

type Component2 struct {
	baseComponent
}

// ConcreteMediator knows both components and reacts on A and D
type ConcreteMediator struct {
	w          io.Writer
	component1 *Component1
	component2 *Component2
}
