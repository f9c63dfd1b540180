/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package proxy

import (
	"fmt"
	"io"

	"github.com/voedger/patterns/pkg/goutils/timeu"
)

func Client(subject ISubject) {
	subject.Request()
}

func Demo(w io.Writer, clock timeu.ITime) {
	fmt.Fprintln(w, "Client: Executing the client code with a real subject:")
	realSubject := NewRealSubject(w)
	Client(realSubject)

	fmt.Fprintln(w)

	fmt.Fprintln(w, "Client: Executing the same client code with a proxy:")
	Client(NewProxy(w, realSubject, nil, clock))
}

// DemoCaching fetches keys through a two-entry cache: a b a c b
func DemoCaching(w io.Writer) error {
	caching, err := NewCachingProxy(w, NewRealFetcher(w), demoCacheSize)
	if err != nil {
		return err
	}
	for _, key := range []string{"a", "b", "a", "c", "b"} {
		fmt.Fprintf(w, "Client: %s = %s\n", key, caching.Fetch(key))
	}
	return nil
}
