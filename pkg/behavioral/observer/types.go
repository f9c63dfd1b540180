/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package observer

import "io"

// IntnFunc returns a non-negative pseudo-random number in [0, n)
type IntnFunc func(n int) int

// Publisher owns a state observers are interested in
type Publisher struct {
	State     int
	w         io.Writer
	intn      IntnFunc
	observers []IObserver
}

// ObserverA reacts when publisher state is less than 10
type ObserverA struct {
	w io.Writer
}

// ObserverB reacts when publisher state is 0 or at least 2
type ObserverB struct {
	w io.Writer
}

// Stock notifies traders about every price change.
// Unlike Publisher it does not deduplicate observers
type Stock struct {
	price     int
	observers []IPriceObserver
}

type Trader struct {
	w io.Writer
}
