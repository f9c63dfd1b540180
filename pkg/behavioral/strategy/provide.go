/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package strategy

import "io"

func NewContext(w io.Writer, strategy IStrategy) *Context {
	return &Context{w: w, strategy: strategy}
}

func NewDiscountContext(discount IDiscount) *DiscountContext {
	return &DiscountContext{discount: discount}
}

func Regular() IDiscount {
	return RateDiscount{Rate: 0.1}
}

func Vip() IDiscount {
	return RateDiscount{Rate: 0.2}
}

func SuperVip() IDiscount {
	return RateDiscount{Rate: 0.3}
}
