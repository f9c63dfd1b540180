/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package proxy

import "errors"

var ErrInvalidCacheSize = errors.New("cache size must be positive")
