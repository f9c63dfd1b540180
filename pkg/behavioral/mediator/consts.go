/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package mediator

// Event is a tag a component sends to the mediator
type Event string

const (
	EventA Event = "A"
	EventB Event = "B"
	EventC Event = "C"
	EventD Event = "D"
)
