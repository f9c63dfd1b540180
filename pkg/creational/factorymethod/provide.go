/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package factorymethod

func NewConcreteCreator1() *Creator {
	return &Creator{factoryMethod: func() IProduct { return ConcreteProduct1{} }}
}

func NewConcreteCreator2() *Creator {
	return &Creator{factoryMethod: func() IProduct { return ConcreteProduct2{} }}
}

func NewCircleFactory() ShapeFactory {
	return ShapeFactory{circleFactory{}}
}

func NewSquareFactory() ShapeFactory {
	return ShapeFactory{squareFactory{}}
}
