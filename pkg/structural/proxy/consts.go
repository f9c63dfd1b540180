/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package proxy

const demoCacheSize = 2
