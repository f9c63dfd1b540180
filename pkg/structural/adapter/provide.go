/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package adapter

func NewAdapter(adaptee *Adaptee) *Adapter {
	return &Adapter{adaptee: adaptee}
}

func NewOldPaymentSystem(amount string) *OldPaymentSystem {
	return &OldPaymentSystem{amount: amount}
}

func NewNewPaymentApp(amount int) *NewPaymentApp {
	return &NewPaymentApp{amount: amount}
}

func NewPaymentAdapter(old *OldPaymentSystem) *PaymentAdapter {
	return &PaymentAdapter{old: old}
}
