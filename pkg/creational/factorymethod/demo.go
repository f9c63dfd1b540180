/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package factorymethod

import (
	"fmt"
	"io"
)

// Client does not know which creator it works with
func Client(w io.Writer, creator *Creator) {
	fmt.Fprintln(w, "Client: I'm not aware of the creator's class, but it still works.")
	fmt.Fprintln(w, creator.SomeOperation())
}

func Demo(w io.Writer) {
	fmt.Fprintln(w, "App: Launched with the ConcreteCreator1.")
	Client(w, NewConcreteCreator1())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "App: Launched with the ConcreteCreator2.")
	Client(w, NewConcreteCreator2())
}

// DemoShapes draws a shape of each kind, circle and square if no kinds given.
// Stops on the first unknown kind, errors: ErrUnknownShapeType
func DemoShapes(w io.Writer, kinds ...string) error {
	if len(kinds) == 0 {
		kinds = defaultShapeKinds
	}
	for _, kind := range kinds {
		f, err := NewShapeFactory(kind)
		if err != nil {
			return err
		}
		f.Draw(w)
	}
	return nil
}
