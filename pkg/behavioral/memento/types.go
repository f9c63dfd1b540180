/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package memento

import (
	"io"

	"github.com/voedger/patterns/pkg/goutils/timeu"
)

// IntnFunc returns a non-negative pseudo-random number in [0, n)
type IntnFunc func(n int) int

type concreteMemento struct {
	state string
	date  string
}

type Originator struct {
	w     io.Writer
	state string
	clock timeu.ITime
	intn  IntnFunc
}

// Caretaker keeps snapshots as a stack, no capacity bound
type Caretaker struct {
	w          io.Writer
	mementos   []IMemento
	originator *Originator
}
