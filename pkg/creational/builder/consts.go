/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package builder

const (
	defaultUserName = "defaultName"
	defaultUserAge  = -99
)
