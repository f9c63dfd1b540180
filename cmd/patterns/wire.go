//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/google/wire"

	"github.com/voedger/patterns/pkg/goutils/timeu"
	"github.com/voedger/patterns/pkg/scenarios"
)

func wireScenarios(params cliParams) scenarios.IScenarios {
	panic(
		wire.Build(
			timeu.NewITime,
			provideIntn,
			scenarios.Provide,
			wire.FieldsOf(&params, "Seed"),
		),
	)
}
