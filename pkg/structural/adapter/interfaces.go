/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package adapter

// ITarget is the interface client code understands
type ITarget interface {
	Request() string
}

// IPaymentApp is what the checkout expects from a payment system
type IPaymentApp interface {
	PayNow() (amount int, err error)
}
