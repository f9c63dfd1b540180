/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package factorymethod

// Creator has the business logic that relies on products made by its factory method
type Creator struct {
	factoryMethod func() IProduct
}

type ConcreteProduct1 struct{}

type ConcreteProduct2 struct{}

type shape struct {
	kind string
}

// ShapeFactory draws shapes made by the embedded IShapeFactory
type ShapeFactory struct {
	IShapeFactory
}

type circleFactory struct{}

type squareFactory struct{}
