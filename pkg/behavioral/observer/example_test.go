/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package observer_test

import (
	"os"

	"github.com/voedger/patterns/pkg/behavioral/observer"
	"github.com/voedger/patterns/pkg/goutils/testingu"
)

func Example() {
	// states: 4+1 = 5, 0+1 = 1, 9+1 = 10
	observer.Demo(os.Stdout, testingu.SequenceIntn(4, 0, 9))

	// Output:
	// Publisher: Attached an observer.
	// Publisher: Attached an observer.
	//
	// Publisher: I'm doing something important.
	//
	// Publisher: My state just changed to 5
	// Subject: Notifying observers...
	// ConcreteObserverA: Reacted to the event.
	// ConcreteObserverB: Reacted to the event.
	//
	// Publisher: I'm doing something important.
	//
	// Publisher: My state just changed to 1
	// Subject: Notifying observers...
	// ConcreteObserverA: Reacted to the event.
	// Subject: Detached an observer.
	//
	// Publisher: I'm doing something important.
	//
	// Publisher: My state just changed to 10
	// Subject: Notifying observers...
}

func ExampleDemoStock() {
	observer.DemoStock(os.Stdout)

	// Output:
	// Trader tracks new price: 100
	// Trader tracks new price: 200
	// Trader tracks new price: 200
	// Trader tracks new price: 250
}
