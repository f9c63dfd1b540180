/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package chain

// handler keeps the link to the next handler, concrete handlers embed it
type handler struct {
	next IHandler
}

// animalHandler eats exactly one kind of food
type animalHandler struct {
	handler
	food   string
	answer func(food string) string
}
