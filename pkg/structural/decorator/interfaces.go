/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package decorator

type IComponent interface {
	Operation() string
}

// ICoffee is priced by wrapping
type ICoffee interface {
	Cost() int
}
