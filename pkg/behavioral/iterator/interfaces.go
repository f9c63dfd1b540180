/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package iterator

// IIterator walks a collection without exposing how the collection is stored
type IIterator[T any] interface {
	// Returns the item under the cursor, zero value if the cursor is not valid
	Current() T

	// Returns the item under the cursor and moves the cursor one step further
	Next() T

	// Cursor position
	Key() int

	// Reports whether the cursor still points to an item
	Valid() bool

	// Moves the cursor back to the starting position
	Rewind()
}

// IAggregator provides iterators over itself
type IAggregator[T any] interface {
	Iterator() IIterator[T]
}
