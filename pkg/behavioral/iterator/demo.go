/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package iterator

import (
	"fmt"
	"io"
)

func Demo(w io.Writer) {
	collection := NewWordsCollection("First", "Second", "Third")

	fmt.Fprintln(w, "Straight traversal:")
	for it := collection.Iterator(); it.Valid(); {
		fmt.Fprintln(w, it.Next())
	}

	fmt.Fprintln(w)

	fmt.Fprintln(w, "Reverse traversal:")
	for it := collection.ReverseIterator(); it.Valid(); {
		fmt.Fprintln(w, it.Next())
	}
}
