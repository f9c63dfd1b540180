/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package strategy

import "io"

// SortStrategy sorts in ascending order
type SortStrategy struct{}

// ReverseStrategy reverses the order
type ReverseStrategy struct{}

// Context holds the current strategy, it can be swapped at any time
type Context struct {
	w        io.Writer
	strategy IStrategy
}

// RateDiscount is a discount of fixed rate
type RateDiscount struct {
	Rate float64
}

type DiscountContext struct {
	discount IDiscount
}
