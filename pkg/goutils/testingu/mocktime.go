/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package testingu

import (
	"sync"
	"time"

	"github.com/voedger/patterns/pkg/goutils/timeu"
)

// MockTimeStart is the instant every new mock clock starts at
var MockTimeStart = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type IMockTime interface {
	timeu.ITime

	// Add moves the clock forward (or backward for negative d)
	Add(d time.Duration)

	// Set moves the clock to the given instant
	Set(now time.Time)
}

func NewMockTime() IMockTime {
	return &mockedTime{now: MockTimeStart}
}

type mockedTime struct {
	sync.RWMutex
	now time.Time
}

func (t *mockedTime) Now() time.Time {
	t.RLock()
	defer t.RUnlock()
	return t.now
}

func (t *mockedTime) Add(d time.Duration) {
	t.Lock()
	defer t.Unlock()
	t.now = t.now.Add(d)
}

func (t *mockedTime) Set(now time.Time) {
	t.Lock()
	defer t.Unlock()
	t.now = now
}

// SequenceIntn returns an intn-like func that yields values one by one and then repeats the last one.
// Each value is reduced modulo n, so it is always in [0, n).
func SequenceIntn(values ...int) func(n int) int {
	mu := sync.Mutex{}
	idx := 0
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		if len(values) == 0 {
			return 0
		}
		v := values[idx]
		if idx < len(values)-1 {
			idx++
		}
		return v % n
	}
}
