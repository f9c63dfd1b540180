/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package builder

type Product1 struct {
	Parts []string
}

// ConcreteBuilder1 keeps one product under construction
type ConcreteBuilder1 struct {
	product *Product1
}

// Director knows the building recipes, the builder does the work
type Director struct {
	builder IBuilder
}

// User has two required and three optional fields.
// Empty optional fields are omitted in JSON
type User struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type userBuilder struct {
	user User
}
