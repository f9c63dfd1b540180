/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package decorator

func (ConcreteComponent) Operation() string {
	return "ConcreteComponent"
}

func (d decorator) Operation() string {
	return d.component.Operation()
}

func (d *ConcreteDecoratorA) Operation() string {
	return "ConcreteDecoratorA(" + d.decorator.Operation() + ")"
}

func (d *ConcreteDecoratorB) Operation() string {
	return "ConcreteDecoratorB(" + d.decorator.Operation() + ")"
}

func (SimpleCoffee) Cost() int {
	return SimpleCoffeeCost
}

func (m *Milk) Cost() int {
	return m.coffee.Cost() + MilkCost
}

func (s *Sugar) Cost() int {
	return s.coffee.Cost() + SugarCost
}
