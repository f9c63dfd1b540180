/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package timeu

import (
	"time"
)

// ITime is the clock used by scenarios that narrate timestamps.
// Tests replace it with testingu.MockTime so transcripts are reproducible.
type ITime interface {
	Now() time.Time
}

func NewITime() ITime {
	return &realTime{}
}

type realTime struct{}

func (t *realTime) Now() time.Time {
	return time.Now()
}
