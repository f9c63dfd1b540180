/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package visitor

import "fmt"

func (c *ComponentA) Accept(visitor IVisitor) {
	visitor.VisitComponentA(c)
}

// ExclusiveMethodOfComponentA is known to visitors only, not to IComponent
func (c *ComponentA) ExclusiveMethodOfComponentA() string {
	return "A"
}

func (c *ComponentB) Accept(visitor IVisitor) {
	visitor.VisitComponentB(c)
}

func (c *ComponentB) SpecialMethodOfComponentB() string {
	return "B"
}

func (v *namedVisitor) VisitComponentA(element *ComponentA) {
	fmt.Fprintf(v.w, "%s + %s\n", element.ExclusiveMethodOfComponentA(), v.name)
}

func (v *namedVisitor) VisitComponentB(element *ComponentB) {
	fmt.Fprintf(v.w, "%s + %s\n", element.SpecialMethodOfComponentB(), v.name)
}

// Client works with any visitor through IVisitor
func Client(components []IComponent, visitor IVisitor) {
	for _, component := range components {
		component.Accept(visitor)
	}
}
