/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package singleton

import (
	"io"
	"sync"

	"github.com/google/uuid"
)

// Singleton has exactly one instance per process, see Instance()
type Singleton struct {
	id uuid.UUID
}

// Logger is an ordinary type, every NewLogger() call gives a new instance
type Logger struct {
	mu sync.Mutex
	w  io.Writer
}

var (
	instance     *Singleton
	instanceOnce sync.Once

	logger     *Logger
	loggerOnce sync.Once
)
