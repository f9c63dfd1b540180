/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package builder_test

import (
	"fmt"
	"os"

	"github.com/voedger/patterns/pkg/creational/builder"
)

func Example() {
	builder.Demo(os.Stdout)

	// Output:
	// Standard basic product:
	// Product parts: PartA1
	//
	// Standard full featured product:
	// Product parts: PartA1, PartB1, PartC1
	//
	// Custom product:
	// Product parts: PartA1, PartC1
}

func ExampleDemoUser() {
	if err := builder.DemoUser(os.Stdout); err != nil {
		fmt.Println(err)
	}

	// Output:
	// {"name":"Alan","age":23,"address":"Atlanta"}
	// {"name":"Alan","age":23,"address":"Atlanta"}
}
