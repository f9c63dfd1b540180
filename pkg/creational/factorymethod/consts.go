/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package factorymethod

const (
	ShapeCircle = "circle"
	ShapeSquare = "square"
)

var defaultShapeKinds = []string{ShapeCircle, ShapeSquare}
