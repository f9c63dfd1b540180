/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package singleton

import (
	"fmt"
	"io"
)

// ID identifies the instance, it never changes
func (s *Singleton) ID() string {
	return s.id.String()
}

func (l *Logger) Log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, msg)
}

// SetOutput redirects the log
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w = w
}
