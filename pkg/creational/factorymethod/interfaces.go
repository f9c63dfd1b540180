/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package factorymethod

type IProduct interface {
	Operation() string
}

type IShape interface {
	Kind() string
}

// IShapeFactory creates shapes of one kind
type IShapeFactory interface {
	CreateShape() IShape
}
