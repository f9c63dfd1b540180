/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package strategy

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

func (SortStrategy) DoAlgorithm(data []string) []string {
	res := slices.Clone(data)
	slices.Sort(res)
	return res
}

func (ReverseStrategy) DoAlgorithm(data []string) []string {
	res := slices.Clone(data)
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

func (c *Context) SetStrategy(strategy IStrategy) {
	c.strategy = strategy
}

func (c *Context) DoSomeBusinessLogic() {
	fmt.Fprintln(c.w, "Context: Sorting data using the strategy (not sure how it'll do it)")
	result := c.strategy.DoAlgorithm(businessData)
	fmt.Fprintln(c.w, strings.Join(result, ","))
}

func (d RateDiscount) Discount(amount float64) float64 {
	return amount * d.Rate
}

func (c *DiscountContext) SetDiscount(discount IDiscount) {
	c.discount = discount
}

func (c *DiscountContext) Execute(amount float64) float64 {
	return c.discount.Discount(amount)
}

// DiscountFor returns the discount strategy by its kind, false if the kind is unknown
func DiscountFor(kind string) (IDiscount, bool) {
	switch kind {
	case DiscountRegular:
		return Regular(), true
	case DiscountVip:
		return Vip(), true
	case DiscountSuperVip:
		return SuperVip(), true
	}
	return nil, false
}
