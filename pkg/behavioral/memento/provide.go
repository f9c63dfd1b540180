/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package memento

import (
	"fmt"
	"io"

	"github.com/voedger/patterns/pkg/goutils/timeu"
)

// NewOriginator prints the initial state.
// clock dates the snapshots, intn picks new states in DoSomething
func NewOriginator(w io.Writer, state string, clock timeu.ITime, intn IntnFunc) *Originator {
	o := &Originator{
		w:     w,
		state: state,
		clock: clock,
		intn:  intn,
	}
	fmt.Fprintf(w, "Originator: My initial state is %s\n", state)
	return o
}

func NewCaretaker(w io.Writer, originator *Originator) *Caretaker {
	return &Caretaker{
		w:          w,
		originator: originator,
	}
}
