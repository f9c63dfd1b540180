/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package observer

// IObserver is notified by a publisher it is attached to.
// Observers are found by identity, so implementations must be comparable (pointers are)
type IObserver interface {
	Update(publisher IPublisher)
}

type IPublisher interface {
	// Attaching the same observer twice has no effect
	Attach(observer IObserver)
	Detach(observer IObserver)

	// Calls Update of every attached observer, in attachment order
	Notify()
}

// IPriceObserver is what Stock notifies
type IPriceObserver interface {
	PriceChanged(price int)
}
