/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package factorymethod_test

import (
	"fmt"
	"os"

	"github.com/voedger/patterns/pkg/creational/factorymethod"
)

func Example() {
	factorymethod.Demo(os.Stdout)

	// Output:
	// App: Launched with the ConcreteCreator1.
	// Client: I'm not aware of the creator's class, but it still works.
	// Creator: The same creator's code just worked with {Result of ConcreteProduct1}
	//
	// App: Launched with the ConcreteCreator2.
	// Client: I'm not aware of the creator's class, but it still works.
	// Creator: The same creator's code just worked with {Result of ConcreteProduct2}
}

func ExampleDemoShapes() {
	if err := factorymethod.DemoShapes(os.Stdout); err != nil {
		fmt.Println(err)
	}

	if err := factorymethod.DemoShapes(os.Stdout, "square", "triangle", "circle"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// My shape is circle
	// My shape is square
	// My shape is square
	// unknown shape type: triangle
}
