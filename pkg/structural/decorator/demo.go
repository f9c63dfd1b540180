/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package decorator

import (
	"fmt"
	"io"
)

func Client(w io.Writer, component IComponent) {
	fmt.Fprintf(w, "RESULT: %s\n", component.Operation())
}

func Demo(w io.Writer) {
	simple := ConcreteComponent{}
	fmt.Fprintln(w, "Client: I've got a simple component:")
	Client(w, simple)
	fmt.Fprintln(w)

	decorated := NewConcreteDecoratorB(NewConcreteDecoratorA(simple))
	fmt.Fprintln(w, "Client: Now I've got a decorated component:")
	Client(w, decorated)
}

// DemoCoffee prints the cost of a coffee with milk and sugar
func DemoCoffee(w io.Writer) {
	coffee := WithSugar(WithMilk(SimpleCoffee{}))
	fmt.Fprintln(w, coffee.Cost())
}
