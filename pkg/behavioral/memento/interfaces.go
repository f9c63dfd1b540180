/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package memento

// IMemento is a snapshot of the Originator state.
// Only the Originator reads State(), the Caretaker uses Name() and Date()
type IMemento interface {
	State() string
	Name() string
	Date() string
}
