/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package iterator_test

import (
	"fmt"
	"os"

	"github.com/voedger/patterns/pkg/behavioral/iterator"
)

func Example() {
	iterator.Demo(os.Stdout)

	// Output:
	// Straight traversal:
	// First
	// Second
	// Third
	//
	// Reverse traversal:
	// Third
	// Second
	// First
}

func ExampleWordsCollection_ForEach() {
	c := iterator.NewWordsCollection("alpha", "beta")
	c.ForEach(func(word string) {
		fmt.Println(word)
	})

	// Output:
	// alpha
	// beta
}
