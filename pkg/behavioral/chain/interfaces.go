/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package chain

// IHandler is a link of the chain.
// Handle either resolves the request or passes it to the next handler.
// Empty result means nobody in the rest of the chain took the request
type IHandler interface {
	// Returns the given handler, so calls can be chained: a.SetNext(b).SetNext(c)
	SetNext(handler IHandler) IHandler
	Handle(request string) string
}
