/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package visitor

// IVisitor has a method per concrete component, so the component type picks the method
type IVisitor interface {
	VisitComponentA(element *ComponentA)
	VisitComponentB(element *ComponentB)
}

type IComponent interface {
	Accept(visitor IVisitor)
}
