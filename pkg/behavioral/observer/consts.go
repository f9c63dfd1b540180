/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package observer

const (
	maxRandomState    = 10
	defaultStockPrice = 100
)
