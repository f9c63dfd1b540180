/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package command

// ICommand is a request turned into an object
type ICommand interface {
	Execute()
}
