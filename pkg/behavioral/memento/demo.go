/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package memento

import (
	"fmt"
	"io"

	"github.com/voedger/patterns/pkg/goutils/timeu"
)

func Demo(w io.Writer, clock timeu.ITime, intn IntnFunc) {
	originator := NewOriginator(w, "Super-duper-super-puper-super.", clock, intn)
	caretaker := NewCaretaker(w, originator)

	for i := 0; i < 3; i++ {
		caretaker.Backup()
		originator.DoSomething()
	}

	fmt.Fprintln(w)
	caretaker.ShowHistory()

	fmt.Fprintln(w, "\nClient: Now, let's rollback!")
	fmt.Fprintln(w)
	caretaker.Undo()

	fmt.Fprintln(w, "\nClient: Once more!")
	fmt.Fprintln(w)
	caretaker.Undo()
}
