/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package scenarios_test

import (
	"fmt"
	"os"

	"github.com/voedger/patterns/pkg/goutils/testingu"
	"github.com/voedger/patterns/pkg/scenarios"
)

func Example() {
	registry := scenarios.Provide(testingu.NewMockTime(), testingu.SequenceIntn(0))

	structural, err := registry.InGroup(scenarios.GroupStructural)
	if err != nil {
		panic(err)
	}
	for _, s := range structural {
		fmt.Println(s.Name, "-", s.Title)
	}

	fmt.Println()
	if err := registry.Run("practice-strategy", os.Stdout, []string{"200"}); err != nil {
		panic(err)
	}

	// Output:
	// adapter - Adapter
	// decorator - Decorator
	// facade - Facade
	// proxy - Proxy
	// caching-proxy - Caching Proxy
	//
	// 20
	// 40
	// 60
}
