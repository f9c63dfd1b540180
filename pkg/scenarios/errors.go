/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package scenarios

import "errors"

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrInvalidAmount    = errors.New("invalid amount")
)
