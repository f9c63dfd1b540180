/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

const (
	allFlag    = "all"
	groupFlag  = "group"
	seedFlag   = "seed"
	outputFlag = "output"
)
