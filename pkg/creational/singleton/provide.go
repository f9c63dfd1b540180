/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package singleton

import (
	"io"

	"github.com/google/uuid"
)

// Instance constructs the singleton on first call and returns the same instance afterwards
func Instance() *Singleton {
	instanceOnce.Do(func() {
		instance = &Singleton{id: uuid.New()}
	})
	return instance
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// LoggerInstance returns the process-wide logger, it discards messages until SetOutput is called
func LoggerInstance() *Logger {
	loggerOnce.Do(func() {
		logger = NewLogger(io.Discard)
	})
	return logger
}
