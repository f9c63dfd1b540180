/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package builder

func NewConcreteBuilder1() *ConcreteBuilder1 {
	return &ConcreteBuilder1{product: &Product1{}}
}

func NewDirector(builder IBuilder) *Director {
	return &Director{builder: builder}
}

// NewUserBuilder starts from a user with default name and age
func NewUserBuilder() IUserBuilder {
	return &userBuilder{
		user: User{
			Name: defaultUserName,
			Age:  defaultUserAge,
		},
	}
}
