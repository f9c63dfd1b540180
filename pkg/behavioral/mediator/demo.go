/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package mediator

import (
	"fmt"
	"io"
)

func Demo(w io.Writer) {
	c1 := NewComponent1(w)
	c2 := NewComponent2(w)
	NewConcreteMediator(w, c1, c2)

	fmt.Fprintln(w, "Client triggers operation A.")
	c1.DoA()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Client triggers operation D.")
	c2.DoD()
}
