/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package builder

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func (p *Product1) ListParts(w io.Writer) {
	fmt.Fprintf(w, "Product parts: %s\n\n", strings.Join(p.Parts, ", "))
}

func (b *ConcreteBuilder1) Reset() {
	b.product = &Product1{}
}

func (b *ConcreteBuilder1) ProducePartA() {
	b.product.Parts = append(b.product.Parts, "PartA1")
}

func (b *ConcreteBuilder1) ProducePartB() {
	b.product.Parts = append(b.product.Parts, "PartB1")
}

func (b *ConcreteBuilder1) ProducePartC() {
	b.product.Parts = append(b.product.Parts, "PartC1")
}

// Product returns the built product and starts a new one
func (b *ConcreteBuilder1) Product() *Product1 {
	result := b.product
	b.Reset()
	return result
}

func (d *Director) SetBuilder(builder IBuilder) {
	d.builder = builder
}

func (d *Director) BuildMinimalViableProduct() {
	d.builder.ProducePartA()
}

func (d *Director) BuildFullFeaturedProduct() {
	d.builder.ProducePartA()
	d.builder.ProducePartB()
	d.builder.ProducePartC()
}

func (u User) JSON() (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user %s: %w", u.Name, err)
	}
	return string(b), nil
}

func (b *userBuilder) SetName(name string) IUserBuilder {
	b.user.Name = name
	return b
}

func (b *userBuilder) SetAge(age int) IUserBuilder {
	b.user.Age = age
	return b
}

func (b *userBuilder) SetEmail(email string) IUserBuilder {
	b.user.Email = email
	return b
}

func (b *userBuilder) SetPhone(phone string) IUserBuilder {
	b.user.Phone = phone
	return b
}

func (b *userBuilder) SetAddress(address string) IUserBuilder {
	b.user.Address = address
	return b
}

func (b *userBuilder) Build() User {
	return b.user
}
