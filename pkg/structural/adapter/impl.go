/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package adapter

import (
	"fmt"
	"strconv"
)

func (Target) Request() string {
	return "Target: The default target's behavior."
}

func (*Adaptee) SpecificRequest() string {
	return ".eerpadA eht fo roivaheb laicepS"
}

func (a *Adapter) Request() string {
	return "Adapter: (TRANSLATED) " + reverse(a.adaptee.SpecificRequest())
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func (p *OldPaymentSystem) MakePayment() string {
	return p.amount
}

func (p *NewPaymentApp) PayNow() (int, error) {
	return p.amount, nil
}

// PayNow converts the old string amount. Errors: ErrWrongAmount
func (a *PaymentAdapter) PayNow() (int, error) {
	raw := a.old.MakePayment()
	amount, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrWrongAmount, raw, err)
	}
	return amount, nil
}
