/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package singleton

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestInstanceIsShared(t *testing.T) {
	require := require.New(t)

	const goroutines = 16
	instances := make([]*Singleton, goroutines)
	wg := sync.WaitGroup{}
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = Instance()
		}(i)
	}
	wg.Wait()

	for _, s := range instances {
		require.Same(instances[0], s)
	}
	_, err := uuid.Parse(Instance().ID())
	require.NoError(err)
	require.Equal(instances[0].ID(), Instance().ID())
}

func TestDemoPrintsSameID(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	Demo(&out)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(lines, 3)

	id1, ok := strings.CutPrefix(lines[0], "Singleton 1: ")
	require.True(ok, lines[0])
	id2, ok := strings.CutPrefix(lines[1], "Singleton 2: ")
	require.True(ok, lines[1])

	parsed, err := uuid.Parse(id1)
	require.NoError(err)
	require.NotEqual(uuid.Nil, parsed)
	require.Equal(id1, id2)
	require.Equal(Instance().ID(), id1)
	require.Equal("Singleton works, both variables contain the same instance", lines[2])
}

func TestLoggerInstance(t *testing.T) {
	require := require.New(t)

	require.NotSame(NewLogger(io.Discard), NewLogger(io.Discard))
	require.Same(LoggerInstance(), LoggerInstance())

	buf := bytes.Buffer{}
	LoggerInstance().SetOutput(&buf)
	defer LoggerInstance().SetOutput(io.Discard)

	LoggerInstance().Log("hello")
	require.Equal("hello\n", buf.String())
}

func TestDemoLoggerWritesThroughLoggers(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	DemoLogger(&out)
	require.Equal("false\ntrue\n", out.String())

	// the singleton is detached from the demo writer afterwards
	LoggerInstance().Log("after demo")
	require.Equal("false\ntrue\n", out.String())
}
