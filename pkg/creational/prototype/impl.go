/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package prototype

// Clone returns a copy that shares nothing mutable with p.
// The back-referencing component is rebuilt so it points to the copy
func (p *Prototype) Clone() *Prototype {
	clone := &Prototype{
		Primitive: p.Primitive,
	}
	if p.Component != nil {
		component := *p.Component
		clone.Component = &component
	}
	clone.CircularReference = NewComponentWithBackReference(clone)
	return clone
}
