/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package adapter

type Target struct{}

// Adaptee is useful but speaks a language clients do not understand
type Adaptee struct{}

// Adapter makes Adaptee look like ITarget
type Adapter struct {
	adaptee *Adaptee
}

// OldPaymentSystem reports amounts as strings
type OldPaymentSystem struct {
	amount string
}

type NewPaymentApp struct {
	amount int
}

// PaymentAdapter makes OldPaymentSystem look like IPaymentApp
type PaymentAdapter struct {
	old *OldPaymentSystem
}
