/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package strategy

import "errors"

var ErrUnknownDiscountKind = errors.New("unknown discount kind")
