/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package visitor

import "io"

type ComponentA struct{}

type ComponentB struct{}

// namedVisitor prints what it visited followed by its own name
type namedVisitor struct {
	w    io.Writer
	name string
}
