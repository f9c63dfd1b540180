/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package command

import "io"

func NewSimpleCommand(w io.Writer, payload string) *SimpleCommand {
	return &SimpleCommand{w: w, payload: payload}
}

func NewComplexCommand(w io.Writer, receiver *Receiver, a, b string) *ComplexCommand {
	return &ComplexCommand{w: w, receiver: receiver, a: a, b: b}
}

func NewReceiver(w io.Writer) *Receiver {
	return &Receiver{w: w}
}

func NewInvoker(w io.Writer) *Invoker {
	return &Invoker{w: w}
}
