/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package chain

const (
	FoodBanana   = "Banana"
	FoodNut      = "Nut"
	FoodMeatBall = "MeatBall"
)

var clientFoods = []string{FoodNut, FoodBanana, "Cup of coffee"}
