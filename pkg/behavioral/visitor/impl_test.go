/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package visitor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type countingVisitor struct {
	a, b int
}

func (v *countingVisitor) VisitComponentA(*ComponentA) { v.a++ }
func (v *countingVisitor) VisitComponentB(*ComponentB) { v.b++ }

func TestDoubleDispatch(t *testing.T) {
	require := require.New(t)

	v := &countingVisitor{}
	Client([]IComponent{&ComponentA{}, &ComponentB{}, &ComponentB{}}, v)
	require.Equal(1, v.a)
	require.Equal(2, v.b)
}
