/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package factorymethod

import "errors"

var ErrUnknownShapeType = errors.New("unknown shape type")
