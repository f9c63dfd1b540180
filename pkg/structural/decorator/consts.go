/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package decorator

const (
	SimpleCoffeeCost = 5
	MilkCost         = 2
	SugarCost        = 1
)
