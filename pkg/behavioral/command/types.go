/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package command

import "io"

// SimpleCommand does everything itself
type SimpleCommand struct {
	w       io.Writer
	payload string
}

// ComplexCommand delegates the work to a Receiver
type ComplexCommand struct {
	w        io.Writer
	receiver *Receiver
	a, b     string
}

// Receiver knows how to do the actual work
type Receiver struct {
	w io.Writer
}

// Invoker is associated with one or several commands and sends requests to them.
// Both commands are optional
type Invoker struct {
	w        io.Writer
	onStart  ICommand
	onFinish ICommand
}
