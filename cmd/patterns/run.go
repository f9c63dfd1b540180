/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/patterns/pkg/scenarios"
)

func newRunCmd() *cobra.Command {
	params := cliParams{}
	cmd := &cobra.Command{
		Use:   "run [scenario [args...]]",
		Short: "run scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), wireScenarios(params), params, args)
		},
	}
	cmd.Flags().BoolVar(&params.All, allFlag, false, "run all scenarios")
	cmd.Flags().StringVar(&params.Group, groupFlag, "", "run all scenarios of the group")
	cmd.Flags().Int64Var(&params.Seed, seedFlag, 0, "seed for scenarios that use randomness")
	return cmd
}

func run(w io.Writer, registry scenarios.IScenarios, params cliParams, args []string) error {
	toRun, scenarioArgs, err := selectScenarios(registry, params, args)
	if err != nil {
		return err
	}

	title := color.New(color.FgCyan, color.Bold).SprintFunc()
	for i, s := range toRun {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, title(fmt.Sprintf("=== %s (%s) ===", s.Title, s.Name)))
		if err := registry.Run(s.Name, w, scenarioArgs); err != nil {
			return err
		}
	}
	logger.Verbose(len(toRun), "scenario(s) finished")
	return nil
}

// selectScenarios resolves the name, --all and --group into scenarios to run.
// Scenario arguments are passed only when a single scenario is named
func selectScenarios(registry scenarios.IScenarios, params cliParams, args []string) (res []scenarios.Scenario, scenarioArgs []string, err error) {
	selectors := 0
	if len(args) > 0 {
		selectors++
	}
	if params.All {
		selectors++
	}
	if params.Group != "" {
		selectors++
	}
	switch {
	case selectors == 0:
		return nil, nil, ErrNothingToRun
	case selectors > 1:
		return nil, nil, ErrAmbiguousSelection
	}

	switch {
	case params.All:
		return registry.List(), nil, nil
	case params.Group != "":
		res, err = registry.InGroup(params.Group)
		return res, nil, err
	}
	s, err := registry.Get(args[0])
	if err != nil {
		return nil, nil, err
	}
	return []scenarios.Scenario{s}, args[1:], nil
}
