/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package proxy

import (
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/patterns/pkg/goutils/timeu"
)

func NewRealSubject(w io.Writer) *RealSubject {
	return &RealSubject{w: w}
}

// NewProxy returns a proxy that allows every request when checkAccess is nil
func NewProxy(w io.Writer, realSubject *RealSubject, checkAccess AccessCheckFunc, clock timeu.ITime) *Proxy {
	if checkAccess == nil {
		checkAccess = AllowAll
	}
	return &Proxy{
		w:           w,
		realSubject: realSubject,
		checkAccess: checkAccess,
		clock:       clock,
	}
}

func AllowAll() bool { return true }

func NewRealFetcher(w io.Writer) *RealFetcher {
	return &RealFetcher{w: w}
}

// NewCachingProxy fronts fetcher with an LRU cache of size entries
func NewCachingProxy(w io.Writer, fetcher IFetcher, size int) (*CachingProxy, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, size)
	}
	cache, err := lru.NewWithEvict[string, string](size, func(key string, _ string) {
		if logger.IsVerbose() {
			logger.Verbose("proxy: evicted", key)
		}
	})
	if err != nil {
		// notest
		return nil, err
	}
	return &CachingProxy{w: w, fetcher: fetcher, cache: cache}, nil
}
