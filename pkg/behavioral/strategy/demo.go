/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package strategy

import (
	"fmt"
	"io"
)

func Demo(w io.Writer) {
	context := NewContext(w, SortStrategy{})
	fmt.Fprintln(w, "Client: Strategy is set to normal sorting.")
	context.DoSomeBusinessLogic()

	fmt.Fprintln(w)

	fmt.Fprintln(w, "Client: Strategy is set to reverse sorting.")
	context.SetStrategy(ReverseStrategy{})
	context.DoSomeBusinessLogic()
}

// DemoDiscount applies every discount to the same amount
func DemoDiscount(w io.Writer, amount float64) {
	discount := NewDiscountContext(Regular())
	fmt.Fprintln(w, discount.Execute(amount))
	discount.SetDiscount(Vip())
	fmt.Fprintln(w, discount.Execute(amount))
	discount.SetDiscount(SuperVip())
	fmt.Fprintln(w, discount.Execute(amount))
}

// DemoDiscountKind prints the discount of the given kind. Errors: ErrUnknownDiscountKind
func DemoDiscountKind(w io.Writer, amount float64, kind string) error {
	discount, ok := DiscountFor(kind)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDiscountKind, kind)
	}
	fmt.Fprintln(w, NewDiscountContext(discount).Execute(amount))
	return nil
}
