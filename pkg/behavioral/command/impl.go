/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package command

import "fmt"

func (c *SimpleCommand) Execute() {
	fmt.Fprintf(c.w, "SimpleCommand: See, I can do simple things like printing (%s)\n", c.payload)
}

func (c *ComplexCommand) Execute() {
	fmt.Fprintln(c.w, "ComplexCommand: Complex stuff should be done by a receiver object.")
	c.receiver.DoSomething(c.a)
	c.receiver.DoSomethingElse(c.b)
}

func (r *Receiver) DoSomething(a string) {
	fmt.Fprintf(r.w, "Receiver: Working on (%s.)\n", a)
}

func (r *Receiver) DoSomethingElse(b string) {
	fmt.Fprintf(r.w, "Receiver: Working on (%s.)\n", b)
}

func (i *Invoker) SetOnStart(command ICommand) {
	i.onStart = command
}

func (i *Invoker) SetOnFinish(command ICommand) {
	i.onFinish = command
}

func (i *Invoker) DoSomethingImportant() {
	fmt.Fprintln(i.w, "Invoker: Does anybody want something done before I begin?")
	if i.onStart != nil {
		i.onStart.Execute()
	}

	fmt.Fprintln(i.w, "Invoker: ...doing something really important...")

	fmt.Fprintln(i.w, "Invoker: Does anybody want something done after I finish?")
	if i.onFinish != nil {
		i.onFinish.Execute()
	}
}
