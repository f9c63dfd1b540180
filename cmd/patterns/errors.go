/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import "errors"

var (
	ErrNothingToRun        = errors.New("specify a scenario name, --all or --group")
	ErrAmbiguousSelection  = errors.New("scenario name, --all and --group are mutually exclusive")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
