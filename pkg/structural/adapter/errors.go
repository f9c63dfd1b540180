/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package adapter

import "errors"

var ErrWrongAmount = errors.New("wrong payment amount")
