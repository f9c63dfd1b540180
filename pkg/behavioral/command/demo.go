/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package command

import "io"

// Demo creates the receiver first, then the commands, then the sender
func Demo(w io.Writer) {
	invoker := NewInvoker(w)
	invoker.SetOnStart(NewSimpleCommand(w, "Say Hi!"))
	receiver := NewReceiver(w)
	invoker.SetOnFinish(NewComplexCommand(w, receiver, "Send email", "Save report"))

	invoker.DoSomethingImportant()
}
