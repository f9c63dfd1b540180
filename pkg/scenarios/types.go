/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package scenarios

import "io"

// IntnFunc returns a non-negative pseudo-random number in [0, n)
type IntnFunc func(n int) int

type RunFunc func(w io.Writer, args []string) error

type Scenario struct {
	Name  string  `json:"name" yaml:"name"`
	Group string  `json:"group" yaml:"group"`
	Title string  `json:"title" yaml:"title"`
	Run   RunFunc `json:"-" yaml:"-"`
}

type registry struct {
	list   []Scenario
	byName map[string]Scenario
}
