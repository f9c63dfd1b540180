/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package strategy

// IStrategy is one of the interchangeable algorithms.
// Implementations must not modify data
type IStrategy interface {
	DoAlgorithm(data []string) []string
}

// IDiscount calculates the discount for the amount
type IDiscount interface {
	Discount(amount float64) float64
}
