/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package prototype

import (
	"fmt"
	"io"
	"time"
)

func Demo(w io.Writer, now time.Time) {
	p1 := &Prototype{
		Primitive: 245,
		Component: &now,
	}
	p1.CircularReference = NewComponentWithBackReference(p1)

	p2 := p1.Clone()

	if p1.Primitive == p2.Primitive {
		fmt.Fprintln(w, "Primitive field values have been carried over to a clone. Yay!")
	} else {
		fmt.Fprintln(w, "Primitive field values have not been copied. Booo!")
	}

	if p1.Component == p2.Component {
		fmt.Fprintln(w, "Simple component has not been cloned. Booo!")
	} else {
		fmt.Fprintln(w, "Simple component has been cloned. Yay!")
	}

	if p1.CircularReference == p2.CircularReference {
		fmt.Fprintln(w, "Component with back reference has not been cloned. Booo!")
	} else {
		fmt.Fprintln(w, "Component with back reference has been cloned. Yay!")
	}

	if p1.CircularReference.Prototype == p2.CircularReference.Prototype {
		fmt.Fprintln(w, "Component with back reference is linked to original object. Booo!")
	} else {
		fmt.Fprintln(w, "Component with back reference is linked to the clone. Yay!")
	}
}
