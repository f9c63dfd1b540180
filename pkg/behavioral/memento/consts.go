/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package memento

const (
	dateLayout      = "2006-01-02 15:04:05"
	randomStateSpan = 30
)

var states = []string{"dog", "cat", "fish", "lizard", "pickle"}
