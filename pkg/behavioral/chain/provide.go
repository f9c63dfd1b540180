/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package chain

import "fmt"

func NewMonkey() IHandler {
	return &animalHandler{
		food: FoodBanana,
		answer: func(food string) string {
			return fmt.Sprintf("Monkey: I'll eat the %s", food)
		},
	}
}

func NewSquirrel() IHandler {
	return &animalHandler{
		food: FoodNut,
		answer: func(food string) string {
			return fmt.Sprintf("Squirrel: I'll eat the %s.", food)
		},
	}
}

func NewDog() IHandler {
	return &animalHandler{
		food: FoodMeatBall,
		answer: func(food string) string {
			return fmt.Sprintf("Dog: I'll eat the %s.", food)
		},
	}
}
