/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package iterator

import "golang.org/x/exp/slices"

var _ IAggregator[string] = (*WordsCollection)(nil)

// Items returns a copy of the words
func (c *WordsCollection) Items() []string {
	return slices.Clone(c.items)
}

func (c *WordsCollection) Count() int {
	return len(c.items)
}

func (c *WordsCollection) AddItem(item string) {
	c.items = append(c.items, item)
}

func (c *WordsCollection) Iterator() IIterator[string] {
	return newAlphabeticalOrderIterator(c, false)
}

func (c *WordsCollection) ReverseIterator() IIterator[string] {
	return newAlphabeticalOrderIterator(c, true)
}

// ForEach calls cb for each word in forward order
func (c *WordsCollection) ForEach(cb func(string)) {
	for it := c.Iterator(); it.Valid(); {
		cb(it.Next())
	}
}

func (i *alphabeticalOrderIterator) startPosition() int {
	if i.reverse {
		return i.collection.Count() - 1
	}
	return 0
}

func (i *alphabeticalOrderIterator) Rewind() {
	i.position = i.startPosition()
}

func (i *alphabeticalOrderIterator) Current() (item string) {
	if i.Valid() {
		item = i.collection.items[i.position]
	}
	return item
}

func (i *alphabeticalOrderIterator) Key() int {
	return i.position
}

func (i *alphabeticalOrderIterator) Next() string {
	item := i.Current()
	if i.reverse {
		i.position--
	} else {
		i.position++
	}
	return item
}

// Forward cursor never goes below zero and reverse cursor never goes above the last word,
// so a single range check covers both directions
func (i *alphabeticalOrderIterator) Valid() bool {
	return i.position >= 0 && i.position < i.collection.Count()
}
