/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package memento

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/patterns/pkg/goutils/testingu"
)

func TestUndoIsLIFO(t *testing.T) {
	require := require.New(t)

	clock := testingu.NewMockTime()
	o := NewOriginator(io.Discard, "initial", clock, testingu.SequenceIntn(0, 1, 2))
	c := NewCaretaker(io.Discard, o)

	c.Backup() // initial
	o.DoSomething()
	require.Equal("dog", o.State())

	clock.Add(time.Second)
	c.Backup() // dog
	o.DoSomething()
	require.Equal("cat", o.State())
	require.Equal(2, c.Len())

	c.Undo()
	require.Equal("dog", o.State())
	c.Undo()
	require.Equal("initial", o.State())
	require.Zero(c.Len())

	// no-op on empty history
	c.Undo()
	require.Equal("initial", o.State())
}

func TestMementoNameAndDate(t *testing.T) {
	require := require.New(t)

	clock := testingu.NewMockTime()
	clock.Set(time.Date(2023, time.December, 31, 23, 59, 58, 0, time.FixedZone("UTC+3", 3*60*60)))
	o := NewOriginator(io.Discard, "state", clock, testingu.SequenceIntn())

	m := o.Save()
	require.Equal("state", m.State())
	require.Equal("2023-12-31 20:59:58", m.Date(), "date is in UTC")
	require.Equal("2023-12-31 20:59:58 / (state...)", m.Name())
}

func TestRandomStateWrapsAround(t *testing.T) {
	require := require.New(t)

	o := NewOriginator(io.Discard, "", testingu.NewMockTime(), testingu.SequenceIntn(4, 5, 29))
	o.DoSomething()
	require.Equal("pickle", o.State())
	o.DoSomething()
	require.Equal("dog", o.State())
	o.DoSomething()
	require.Equal("pickle", o.State())
}
