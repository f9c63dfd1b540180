/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package observer

import "io"

func NewPublisher(w io.Writer, intn IntnFunc) *Publisher {
	return &Publisher{w: w, intn: intn}
}

func NewObserverA(w io.Writer) *ObserverA {
	return &ObserverA{w: w}
}

func NewObserverB(w io.Writer) *ObserverB {
	return &ObserverB{w: w}
}

func NewStock() *Stock {
	return &Stock{price: defaultStockPrice}
}

func NewTrader(w io.Writer) *Trader {
	return &Trader{w: w}
}
