/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package builder

import (
	"fmt"
	"io"
)

func Demo(w io.Writer) {
	director := NewDirector(NewConcreteBuilder1())
	builder := NewConcreteBuilder1()
	director.SetBuilder(builder)

	fmt.Fprintln(w, "Standard basic product:")
	director.BuildMinimalViableProduct()
	builder.Product().ListParts(w)

	fmt.Fprintln(w, "Standard full featured product:")
	director.BuildFullFeaturedProduct()
	builder.Product().ListParts(w)

	fmt.Fprintln(w, "Custom product:")
	builder.ProducePartA()
	builder.ProducePartC()
	builder.Product().ListParts(w)
}

// DemoUser compares a user made by the constructor with the same user made by the builder
func DemoUser(w io.Writer) error {
	constructed := User{Name: "Alan", Age: 23, Address: "Atlanta"}
	built := NewUserBuilder().
		SetName("Alan").
		SetAge(23).
		SetAddress("Atlanta").
		Build()

	for _, u := range []User{constructed, built} {
		s, err := u.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
	}
	return nil
}
