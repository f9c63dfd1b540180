/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package scenarios

const (
	GroupBehavioral = "behavioral"
	GroupCreational = "creational"
	GroupStructural = "structural"
	GroupPractice   = "practice"
)

// amount used by practice-strategy when no argument is given
const defaultDiscountAmount = 100.0

var groupsOrder = []string{GroupBehavioral, GroupCreational, GroupStructural, GroupPractice}
