/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package visitor

import "io"

func NewVisitor1(w io.Writer) IVisitor {
	return &namedVisitor{w: w, name: "ConcreteVisitor1"}
}

func NewVisitor2(w io.Writer) IVisitor {
	return &namedVisitor{w: w, name: "ConcreteVisitor2"}
}
