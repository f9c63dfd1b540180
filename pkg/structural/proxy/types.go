/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package proxy

import (
	"io"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/patterns/pkg/goutils/timeu"
)

// AccessCheckFunc decides whether the proxied request may proceed
type AccessCheckFunc func() bool

type RealSubject struct {
	w io.Writer
}

type Proxy struct {
	w           io.Writer
	realSubject *RealSubject
	checkAccess AccessCheckFunc
	clock       timeu.ITime
}

type RealFetcher struct {
	w io.Writer
}

// CachingProxy keeps the last fetched values in an LRU cache
type CachingProxy struct {
	w       io.Writer
	fetcher IFetcher
	cache   *lru.Cache[string, string]
}
