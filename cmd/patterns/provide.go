/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"math/rand"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/patterns/pkg/goutils/timeu"
	"github.com/voedger/patterns/pkg/scenarios"
)

// provideIntn returns the random source for memento and observer. Zero seed means seeded from the clock
func provideIntn(clock timeu.ITime, seed int64) scenarios.IntnFunc {
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	logger.Verbose("random seed:", seed)
	return rand.New(rand.NewSource(seed)).Intn
}
