/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package visitor

import (
	"fmt"
	"io"
)

func Demo(w io.Writer) {
	components := []IComponent{&ComponentA{}, &ComponentB{}}

	fmt.Fprintln(w, "The client code works with all visitors via the base Visitor interface:")
	Client(components, NewVisitor1(w))

	fmt.Fprintln(w)

	fmt.Fprintln(w, "It allows the same client code to work with different types of visitors:")
	Client(components, NewVisitor2(w))
}
