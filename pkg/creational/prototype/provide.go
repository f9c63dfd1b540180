/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package prototype

func NewComponentWithBackReference(prototype *Prototype) *ComponentWithBackReference {
	return &ComponentWithBackReference{Prototype: prototype}
}
