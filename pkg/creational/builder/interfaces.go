/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package builder

// IBuilder produces the parts of a product step by step
type IBuilder interface {
	ProducePartA()
	ProducePartB()
	ProducePartC()
}

// IUserBuilder builds a User with fluent calls
type IUserBuilder interface {
	SetName(name string) IUserBuilder
	SetAge(age int) IUserBuilder
	SetEmail(email string) IUserBuilder
	SetPhone(phone string) IUserBuilder
	SetAddress(address string) IUserBuilder
	Build() User
}
