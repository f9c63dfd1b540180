/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package state

import "io"

// Context delegates the state-specific work to the active state
type Context struct {
	w     io.Writer
	state IState
}

type baseState struct {
	w       io.Writer
	context *Context
}

type ConcreteStateA struct {
	baseState
}

type ConcreteStateB struct {
	baseState
}
