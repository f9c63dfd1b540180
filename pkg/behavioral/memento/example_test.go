/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package memento_test

import (
	"os"
	"time"

	"github.com/voedger/patterns/pkg/behavioral/memento"
	"github.com/voedger/patterns/pkg/goutils/testingu"
)

func Example() {
	clock := testingu.NewMockTime()
	clock.Set(time.Date(2024, time.May, 4, 10, 30, 0, 0, time.UTC))

	// states: 6 % 5 = cat, 13 % 5 = lizard, 24 % 5 = pickle
	memento.Demo(os.Stdout, clock, testingu.SequenceIntn(6, 13, 24))

	// Output:
	// Originator: My initial state is Super-duper-super-puper-super.
	//
	// Caretaker: Saving Originator's state...
	// 2024-05-04 10:30:00
	// Originator: I'm doing something important.
	// Originator: and my state has changed to: cat
	//
	// Caretaker: Saving Originator's state...
	// 2024-05-04 10:30:00
	// Originator: I'm doing something important.
	// Originator: and my state has changed to: lizard
	//
	// Caretaker: Saving Originator's state...
	// 2024-05-04 10:30:00
	// Originator: I'm doing something important.
	// Originator: and my state has changed to: pickle
	//
	// Caretaker: Here's the list of mementos:
	// 2024-05-04 10:30:00 / (Super-duper-super-puper-super....)
	// 2024-05-04 10:30:00 / (cat...)
	// 2024-05-04 10:30:00 / (lizard...)
	//
	// Client: Now, let's rollback!
	//
	// Caretaker: Restoring state to: 2024-05-04 10:30:00 / (lizard...)
	// Originator: My state has changed to lizard
	//
	// Client: Once more!
	//
	// Caretaker: Restoring state to: 2024-05-04 10:30:00 / (cat...)
	// Originator: My state has changed to cat
}
