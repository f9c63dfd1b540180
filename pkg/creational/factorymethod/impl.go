/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package factorymethod

import (
	"fmt"
	"io"
)

func (c *Creator) FactoryMethod() IProduct {
	return c.factoryMethod()
}

func (c *Creator) SomeOperation() string {
	product := c.FactoryMethod()
	return "Creator: The same creator's code just worked with " + product.Operation()
}

func (ConcreteProduct1) Operation() string {
	return "{Result of ConcreteProduct1}"
}

func (ConcreteProduct2) Operation() string {
	return "{Result of ConcreteProduct2}"
}

func (s shape) Kind() string {
	return s.kind
}

func (circleFactory) CreateShape() IShape {
	return shape{kind: ShapeCircle}
}

func (squareFactory) CreateShape() IShape {
	return shape{kind: ShapeSquare}
}

func (f ShapeFactory) Draw(w io.Writer) {
	fmt.Fprintf(w, "My shape is %s\n", f.CreateShape().Kind())
}

// NewShape is a simple factory. Errors: ErrUnknownShapeType
func NewShape(kind string) (IShape, error) {
	f, err := NewShapeFactory(kind)
	if err != nil {
		return nil, err
	}
	return f.CreateShape(), nil
}

// NewShapeFactory returns the factory for the shape kind. Errors: ErrUnknownShapeType
func NewShapeFactory(kind string) (ShapeFactory, error) {
	switch kind {
	case ShapeCircle:
		return NewCircleFactory(), nil
	case ShapeSquare:
		return NewSquareFactory(), nil
	}
	return ShapeFactory{}, fmt.Errorf("%w: %s", ErrUnknownShapeType, kind)
}
