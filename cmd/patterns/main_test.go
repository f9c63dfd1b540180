/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/voedger/patterns/pkg/creational/factorymethod"
	"github.com/voedger/patterns/pkg/goutils/testingu"
	"github.com/voedger/patterns/pkg/scenarios"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("os/signal.signal_recv"),
		goleak.IgnoreTopFunction("os/signal.loop"),
	)
}

func TestList(t *testing.T) {
	testCases := []testingu.CmdTestCase{
		{
			Name: "text",
			Args: []string{"patterns", "list"},
			ExpectedStdoutPatterns: []string{
				"chain-of-responsibility\tbehavioral\tChain of Responsibility\n",
				"caching-proxy\tstructural\tCaching Proxy\n",
				"practice-strategy\tpractice\tDiscount Strategy\n",
			},
		},
		{
			Name:                     "json group",
			Args:                     []string{"patterns", "list", "--group", "practice", "--output", "json"},
			ExpectedStdoutPatterns:   []string{`"name": "practice-adapter"`, `"group": "practice"`},
			UnexpectedStdoutPatterns: []string{"chain-of-responsibility", `"Run"`},
		},
		{
			Name:                   "yaml",
			Args:                   []string{"patterns", "list", "-o", "yaml"},
			ExpectedStdoutPatterns: []string{"- name: adapter\n", "group: structural\n", "title: Memento\n"},
		},
		{
			Name:                "unknown output",
			Args:                []string{"patterns", "list", "-o", "xml"},
			ExpectedErr:         ErrUnknownOutputFormat,
			ExpectedErrPatterns: []string{"xml"},
		},
		{
			Name:        "unknown group",
			Args:        []string{"patterns", "list", "--group", "anti-patterns"},
			ExpectedErr: scenarios.ErrGroupNotFound,
		},
	}
	testingu.RunCmdTestCases(t, execRootCmd, testCases, "1.0.0")
}

func TestRun(t *testing.T) {
	testCases := []testingu.CmdTestCase{
		{
			Name: "single",
			Args: []string{"patterns", "run", "chain-of-responsibility"},
			ExpectedStdoutPatterns: []string{
				"=== Chain of Responsibility (chain-of-responsibility) ===\n",
				"Squirrel: I'll eat the Nut.\n",
			},
			UnexpectedStdoutPatterns: []string{"=== Command"},
		},
		{
			Name:                   "scenario args",
			Args:                   []string{"patterns", "run", "practice-strategy", "200"},
			ExpectedStdoutPatterns: []string{"20\n40\n60\n"},
		},
		{
			Name:        "scenario error",
			Args:        []string{"patterns", "run", "practice-factory-method", "circle", "triangle"},
			ExpectedErr: factorymethod.ErrUnknownShapeType,
			// the circle is drawn before the run stops
			ExpectedStdoutPatterns: []string{"My shape is circle\n"},
		},
		{
			Name: "group",
			Args: []string{"patterns", "run", "--group", "creational"},
			ExpectedStdoutPatterns: []string{
				"=== Builder (builder) ===",
				"=== Singleton (singleton) ===",
				"Singleton works, both variables contain the same instance\n",
			},
			UnexpectedStdoutPatterns: []string{"=== Adapter"},
		},
		{
			Name: "all",
			Args: []string{"patterns", "run", "--all", "--seed", "42"},
			ExpectedStdoutPatterns: []string{
				"=== Visitor (visitor) ===",
				"=== Caching Proxy (caching-proxy) ===",
				"=== Logger Singleton (practice-singleton) ===",
			},
		},
		{
			Name:        "unknown scenario",
			Args:        []string{"patterns", "run", "god-object"},
			ExpectedErr: scenarios.ErrScenarioNotFound,
		},
		{
			Name:        "nothing to run",
			Args:        []string{"patterns", "run"},
			ExpectedErr: ErrNothingToRun,
		},
		{
			Name:        "ambiguous",
			Args:        []string{"patterns", "run", "memento", "--all"},
			ExpectedErr: ErrAmbiguousSelection,
		},
	}
	testingu.RunCmdTestCases(t, execRootCmd, testCases, "1.0.0")
}

func TestSeedMakesRunsReproducible(t *testing.T) {
	require := require.New(t)

	runWithSeed := func(seed string) string {
		stdout, _, err := testingu.CaptureStdoutStderr(func() error {
			return execRootCmd([]string{"patterns", "run", "observer", "--seed", seed}, "1.0.0")
		})
		require.NoError(err)
		return stdout
	}

	first := runWithSeed("7")
	require.Contains(first, "Publisher: My state just changed to")
	require.Equal(first, runWithSeed("7"))
}
