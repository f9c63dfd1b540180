/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package decorator

type ConcreteComponent struct{}

// decorator forwards to the wrapped component
type decorator struct {
	component IComponent
}

type ConcreteDecoratorA struct {
	decorator
}

type ConcreteDecoratorB struct {
	decorator
}

type SimpleCoffee struct{}

type Milk struct {
	coffee ICoffee
}

type Sugar struct {
	coffee ICoffee
}
