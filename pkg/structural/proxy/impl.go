/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package proxy

import (
	"fmt"
	"time"
)

func (s *RealSubject) Request() {
	fmt.Fprintln(s.w, "RealSubject: Handling requests.")
}

func (p *Proxy) Request() {
	fmt.Fprintln(p.w, "Proxy: Checking access prior to firing a real request")
	if !p.checkAccess() {
		return
	}
	p.realSubject.Request()
	p.logAccess()
}

func (p *Proxy) logAccess() {
	fmt.Fprintln(p.w, "Proxy: Logging the time of request:", p.clock.Now().UTC().Format(time.RFC3339))
}

func (f *RealFetcher) Fetch(key string) string {
	fmt.Fprintf(f.w, "RealFetcher: Fetching %s\n", key)
	return "value-" + key
}

func (p *CachingProxy) Fetch(key string) string {
	if value, ok := p.cache.Get(key); ok {
		fmt.Fprintf(p.w, "CachingProxy: Serving %s from cache\n", key)
		return value
	}
	value := p.fetcher.Fetch(key)
	p.cache.Add(key, value)
	return value
}

// Len returns the number of cached keys
func (p *CachingProxy) Len() int {
	return p.cache.Len()
}
