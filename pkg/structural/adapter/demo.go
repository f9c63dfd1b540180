/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package adapter

import (
	"fmt"
	"io"
)

// Client works with anything that follows ITarget
func Client(w io.Writer, target ITarget) {
	fmt.Fprintln(w, target.Request())
}

func Demo(w io.Writer) {
	fmt.Fprintln(w, "Client: I can work just fine with the Target objects:")
	Client(w, Target{})

	fmt.Fprintln(w)

	adaptee := &Adaptee{}
	fmt.Fprintln(w, "Client: The Adaptee class has a weird interface. See, I don't understand it:")
	fmt.Fprintf(w, "Adaptee: %s\n", adaptee.SpecificRequest())

	fmt.Fprintln(w)

	fmt.Fprintln(w, "Client: But I can work with it via the Adapter:")
	Client(w, NewAdapter(adaptee))
}

// DemoPayment prints the amount type of the old system, the new app and the adapted old system
func DemoPayment(w io.Writer) error {
	oldSystem := NewOldPaymentSystem("200")
	newApp := NewNewPaymentApp(200)

	fmt.Fprintf(w, "%T\n", oldSystem.MakePayment())

	for _, app := range []IPaymentApp{newApp, NewPaymentAdapter(oldSystem)} {
		amount, err := app.PayNow()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%T\n", amount)
	}
	return nil
}
