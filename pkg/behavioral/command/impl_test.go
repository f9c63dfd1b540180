/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package command

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommand struct {
	mock.Mock
}

func (m *mockCommand) Execute() {
	m.Called()
}

func TestInvokerExecutesCommandsInOrder(t *testing.T) {
	require := require.New(t)

	var order []string
	start := &mockCommand{}
	start.On("Execute").Run(func(mock.Arguments) { order = append(order, "start") }).Once()
	finish := &mockCommand{}
	finish.On("Execute").Run(func(mock.Arguments) { order = append(order, "finish") }).Once()

	invoker := NewInvoker(io.Discard)
	invoker.SetOnStart(start)
	invoker.SetOnFinish(finish)
	invoker.DoSomethingImportant()

	start.AssertExpectations(t)
	finish.AssertExpectations(t)
	require.Equal([]string{"start", "finish"}, order)
}

func TestInvokerWithoutCommands(t *testing.T) {
	buf := bytes.Buffer{}
	NewInvoker(&buf).DoSomethingImportant()
	require.Equal(t, "Invoker: Does anybody want something done before I begin?\n"+
		"Invoker: ...doing something really important...\n"+
		"Invoker: Does anybody want something done after I finish?\n", buf.String())
}

func TestComplexCommandDelegatesToReceiver(t *testing.T) {
	buf := bytes.Buffer{}
	NewComplexCommand(&buf, NewReceiver(&buf), "a", "b").Execute()
	require.Equal(t, "ComplexCommand: Complex stuff should be done by a receiver object.\n"+
		"Receiver: Working on (a.)\n"+
		"Receiver: Working on (b.)\n", buf.String())
}

func TestCommandCanBeReplaced(t *testing.T) {
	buf := bytes.Buffer{}
	invoker := NewInvoker(io.Discard)
	invoker.SetOnStart(NewSimpleCommand(&buf, "first"))
	invoker.SetOnStart(NewSimpleCommand(&buf, "second"))
	invoker.DoSomethingImportant()
	require.Equal(t, "SimpleCommand: See, I can do simple things like printing (second)\n", buf.String())
}
