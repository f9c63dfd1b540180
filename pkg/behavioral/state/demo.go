/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package state

import "io"

func Demo(w io.Writer) {
	context := NewContext(w, NewConcreteStateA(w))
	context.Request1()
	context.Request2()
}
