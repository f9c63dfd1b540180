/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package prototype

import "time"

// ComponentWithBackReference points back to the prototype that owns it
type ComponentWithBackReference struct {
	Prototype *Prototype
}

// Prototype can copy itself, including the components it owns
type Prototype struct {
	Primitive         any
	Component         *time.Time
	CircularReference *ComponentWithBackReference
}
