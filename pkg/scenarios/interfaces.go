/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package scenarios

import "io"

// IScenarios is the registry of runnable pattern scenarios
type IScenarios interface {
	// List returns all scenarios ordered by group, then by registration order
	List() []Scenario

	Groups() []string

	// InGroup returns scenarios of the group in list order.
	// Errors: ErrGroupNotFound
	InGroup(group string) ([]Scenario, error)

	// Errors: ErrScenarioNotFound
	Get(name string) (Scenario, error)

	// Run finds the scenario and runs it with the given writer and arguments.
	// Errors: ErrScenarioNotFound, any error returned by the scenario itself
	Run(name string, w io.Writer, args []string) error
}
