/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package chain

import (
	"fmt"
	"io"
)

// Demo builds monkey -> squirrel -> dog and feeds the whole chain, then the squirrel sub-chain
func Demo(w io.Writer) {
	monkey := NewMonkey()
	squirrel := NewSquirrel()
	dog := NewDog()

	monkey.SetNext(squirrel).SetNext(dog)

	Client(w, monkey)
	fmt.Fprintln(w)
	Client(w, squirrel)
}
