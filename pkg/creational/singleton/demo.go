/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package singleton

import (
	"fmt"
	"io"
)

func Demo(w io.Writer) {
	s1 := Instance()
	s2 := Instance()

	fmt.Fprintln(w, "Singleton 1:", s1.ID())
	fmt.Fprintln(w, "Singleton 2:", s2.ID())

	if s1 == s2 {
		fmt.Fprintln(w, "Singleton works, both variables contain the same instance")
	} else {
		fmt.Fprintln(w, "Singleton failed, variables contain the different instances")
	}
}

// DemoLogger compares two ordinary loggers and then two singleton loggers,
// each verdict is written through the loggers being compared
func DemoLogger(w io.Writer) {
	logger1 := NewLogger(w)
	logger2 := NewLogger(w)
	logger1.Log(fmt.Sprint(logger1 == logger2))

	singleton1 := LoggerInstance()
	singleton2 := LoggerInstance()
	singleton1.SetOutput(w)
	defer singleton1.SetOutput(io.Discard)
	singleton2.Log(fmt.Sprint(singleton1 == singleton2))
}
