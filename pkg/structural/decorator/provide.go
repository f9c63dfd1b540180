/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package decorator

func NewConcreteDecoratorA(component IComponent) *ConcreteDecoratorA {
	return &ConcreteDecoratorA{decorator{component: component}}
}

func NewConcreteDecoratorB(component IComponent) *ConcreteDecoratorB {
	return &ConcreteDecoratorB{decorator{component: component}}
}

func WithMilk(coffee ICoffee) ICoffee {
	return &Milk{coffee: coffee}
}

func WithSugar(coffee ICoffee) ICoffee {
	return &Sugar{coffee: coffee}
}
