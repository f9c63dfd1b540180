/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package mediator

// IMediator is the only thing components know about each other
type IMediator interface {
	Notify(sender any, event Event)
}
