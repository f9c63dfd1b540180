/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package mediator_test

import (
	"os"

	"github.com/voedger/patterns/pkg/behavioral/mediator"
)

func Example() {
	mediator.Demo(os.Stdout)

	// Output:
	// Client triggers operation A.
	// Component 1 does A
	// Mediator reacts on A and triggers the following operations:
	// Component 2 does C
	//
	// Client triggers operation D.
	// Component 2 does D
	// Mediator reacts on D and triggers the following operations:
	// Component 1 does B
	// Component 2 does C
}
