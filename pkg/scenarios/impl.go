/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package scenarios

import (
	"fmt"
	"io"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"
)

func (r *registry) add(s Scenario) {
	if _, ok := r.byName[s.Name]; ok {
		panic(fmt.Sprintf("scenario %s registered twice", s.Name))
	}
	if !slices.Contains(groupsOrder, s.Group) {
		panic(fmt.Sprintf("scenario %s: unknown group %s", s.Name, s.Group))
	}
	r.byName[s.Name] = s
	r.list = append(r.list, s)
}

// sort orders scenarios by group, keeping registration order inside a group
func (r *registry) sort() {
	sorted := make([]Scenario, 0, len(r.list))
	for _, group := range groupsOrder {
		for _, s := range r.list {
			if s.Group == group {
				sorted = append(sorted, s)
			}
		}
	}
	r.list = sorted
}

func (r *registry) List() []Scenario {
	return slices.Clone(r.list)
}

func (r *registry) Groups() []string {
	return slices.Clone(groupsOrder)
}

func (r *registry) InGroup(group string) ([]Scenario, error) {
	if !slices.Contains(groupsOrder, group) {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, group)
	}
	res := []Scenario{}
	for _, s := range r.list {
		if s.Group == group {
			res = append(res, s)
		}
	}
	return res, nil
}

func (r *registry) Get(name string) (Scenario, error) {
	s, ok := r.byName[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, name)
	}
	return s, nil
}

func (r *registry) Run(name string, w io.Writer, args []string) error {
	s, err := r.Get(name)
	if err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose("running scenario", s.Name, "args:", args)
	}
	if err := s.Run(w, args); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	logger.Verbose("scenario", s.Name, "finished")
	return nil
}
