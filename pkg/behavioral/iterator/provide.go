/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package iterator

func NewWordsCollection(items ...string) *WordsCollection {
	c := &WordsCollection{}
	for _, item := range items {
		c.AddItem(item)
	}
	return c
}

func newAlphabeticalOrderIterator(collection *WordsCollection, reverse bool) *alphabeticalOrderIterator {
	it := &alphabeticalOrderIterator{
		collection: collection,
		reverse:    reverse,
	}
	it.Rewind()
	return it
}
