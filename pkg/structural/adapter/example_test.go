/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package adapter_test

import (
	"fmt"
	"os"

	"github.com/voedger/patterns/pkg/structural/adapter"
)

func Example() {
	adapter.Demo(os.Stdout)

	// Output:
	// Client: I can work just fine with the Target objects:
	// Target: The default target's behavior.
	//
	// Client: The Adaptee class has a weird interface. See, I don't understand it:
	// Adaptee: .eerpadA eht fo roivaheb laicepS
	//
	// Client: But I can work with it via the Adapter:
	// Adapter: (TRANSLATED) Special behavior of the Adapree.
}

func ExampleDemoPayment() {
	if err := adapter.DemoPayment(os.Stdout); err != nil {
		fmt.Println(err)
	}

	// Output:
	// string
	// int
	// int
}
