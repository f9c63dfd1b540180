/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package strategy

const (
	DiscountRegular  = "regular"
	DiscountVip      = "vip"
	DiscountSuperVip = "super-vip"
)

var businessData = []string{"a", "b", "c", "d", "e"}
