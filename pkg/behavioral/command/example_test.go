/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package command_test

import (
	"os"

	"github.com/voedger/patterns/pkg/behavioral/command"
)

func Example() {
	command.Demo(os.Stdout)

	// Output:
	// Invoker: Does anybody want something done before I begin?
	// SimpleCommand: See, I can do simple things like printing (Say Hi!)
	// Invoker: ...doing something really important...
	// Invoker: Does anybody want something done after I finish?
	// ComplexCommand: Complex stuff should be done by a receiver object.
	// Receiver: Working on (Send email.)
	// Receiver: Working on (Save report.)
}
