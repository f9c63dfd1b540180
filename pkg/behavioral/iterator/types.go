/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package iterator

// WordsCollection is a plain ordered list of words
type WordsCollection struct {
	items []string
}

// alphabeticalOrderIterator walks WordsCollection forward or backward.
// It reads the collection live, so words added later are seen if the cursor has not passed them
type alphabeticalOrderIterator struct {
	collection *WordsCollection
	position   int
	reverse    bool
}
