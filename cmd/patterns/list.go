/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voedger/patterns/pkg/scenarios"
)

func newListCmd() *cobra.Command {
	params := cliParams{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.OutOrStdout(), wireScenarios(params), params)
		},
	}
	cmd.Flags().StringVar(&params.Group, groupFlag, "", "list only scenarios of the group")
	cmd.Flags().StringVarP(&params.Output, outputFlag, "o", outputText, "output format: text, json or yaml")
	return cmd
}

func list(w io.Writer, registry scenarios.IScenarios, params cliParams) error {
	res := registry.List()
	if params.Group != "" {
		var err error
		if res, err = registry.InGroup(params.Group); err != nil {
			return err
		}
	}

	switch params.Output {
	case outputText:
		for _, s := range res {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Group, s.Title)
		}
	case outputJSON:
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			// notest
			return err
		}
		fmt.Fprintln(w, string(b))
	case outputYAML:
		b, err := yaml.Marshal(res)
		if err != nil {
			// notest
			return err
		}
		fmt.Fprint(w, string(b))
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOutputFormat, params.Output)
	}
	return nil
}
