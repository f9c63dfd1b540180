/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package state

// IState is one of the states a Context can be in.
// States may switch the Context to another state
type IState interface {
	Name() string
	SetContext(context *Context)
	Handle1()
	Handle2()
}
