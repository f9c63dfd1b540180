/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package proxy

// ISubject is shared by RealSubject and Proxy so clients can't tell them apart
type ISubject interface {
	Request()
}

// IFetcher returns the value for a key, possibly slowly
type IFetcher interface {
	Fetch(key string) string
}
