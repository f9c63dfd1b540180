/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

type cliParams struct {
	All    bool
	Group  string
	Output string

	// Seed for the random source, 0 means seeded from the clock
	Seed int64
}
