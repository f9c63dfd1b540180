/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package scenarios

import (
	"fmt"
	"io"
	"strconv"

	"github.com/voedger/patterns/pkg/behavioral/chain"
	"github.com/voedger/patterns/pkg/behavioral/command"
	"github.com/voedger/patterns/pkg/behavioral/iterator"
	"github.com/voedger/patterns/pkg/behavioral/mediator"
	"github.com/voedger/patterns/pkg/behavioral/memento"
	"github.com/voedger/patterns/pkg/behavioral/observer"
	"github.com/voedger/patterns/pkg/behavioral/state"
	"github.com/voedger/patterns/pkg/behavioral/strategy"
	"github.com/voedger/patterns/pkg/behavioral/visitor"
	"github.com/voedger/patterns/pkg/creational/builder"
	"github.com/voedger/patterns/pkg/creational/factorymethod"
	"github.com/voedger/patterns/pkg/creational/prototype"
	"github.com/voedger/patterns/pkg/creational/singleton"
	"github.com/voedger/patterns/pkg/goutils/timeu"
	"github.com/voedger/patterns/pkg/structural/adapter"
	"github.com/voedger/patterns/pkg/structural/decorator"
	"github.com/voedger/patterns/pkg/structural/facade"
	"github.com/voedger/patterns/pkg/structural/proxy"
)

// Provide builds the registry. clock and intn feed the scenarios that narrate time or randomness
func Provide(clock timeu.ITime, intn IntnFunc) IScenarios {
	r := &registry{byName: map[string]Scenario{}}

	// behavioral
	r.add(Scenario{Name: "chain-of-responsibility", Group: GroupBehavioral, Title: "Chain of Responsibility", Run: noArgs(chain.Demo)})
	r.add(Scenario{Name: "command", Group: GroupBehavioral, Title: "Command", Run: noArgs(command.Demo)})
	r.add(Scenario{Name: "iterator", Group: GroupBehavioral, Title: "Iterator", Run: noArgs(iterator.Demo)})
	r.add(Scenario{Name: "mediator", Group: GroupBehavioral, Title: "Mediator", Run: noArgs(mediator.Demo)})
	r.add(Scenario{Name: "memento", Group: GroupBehavioral, Title: "Memento", Run: noArgs(func(w io.Writer) {
		memento.Demo(w, clock, memento.IntnFunc(intn))
	})})
	r.add(Scenario{Name: "observer", Group: GroupBehavioral, Title: "Observer", Run: noArgs(func(w io.Writer) {
		observer.Demo(w, observer.IntnFunc(intn))
	})})
	r.add(Scenario{Name: "state", Group: GroupBehavioral, Title: "State", Run: noArgs(state.Demo)})
	r.add(Scenario{Name: "strategy", Group: GroupBehavioral, Title: "Strategy", Run: noArgs(strategy.Demo)})
	r.add(Scenario{Name: "visitor", Group: GroupBehavioral, Title: "Visitor", Run: noArgs(visitor.Demo)})

	// creational
	r.add(Scenario{Name: "builder", Group: GroupCreational, Title: "Builder", Run: noArgs(builder.Demo)})
	r.add(Scenario{Name: "factory-method", Group: GroupCreational, Title: "Factory Method", Run: noArgs(factorymethod.Demo)})
	r.add(Scenario{Name: "prototype", Group: GroupCreational, Title: "Prototype", Run: noArgs(func(w io.Writer) {
		prototype.Demo(w, clock.Now())
	})})
	r.add(Scenario{Name: "singleton", Group: GroupCreational, Title: "Singleton", Run: noArgs(singleton.Demo)})

	// structural
	r.add(Scenario{Name: "adapter", Group: GroupStructural, Title: "Adapter", Run: noArgs(adapter.Demo)})
	r.add(Scenario{Name: "decorator", Group: GroupStructural, Title: "Decorator", Run: noArgs(decorator.Demo)})
	r.add(Scenario{Name: "facade", Group: GroupStructural, Title: "Facade", Run: noArgs(facade.Demo)})
	r.add(Scenario{Name: "proxy", Group: GroupStructural, Title: "Proxy", Run: noArgs(func(w io.Writer) {
		proxy.Demo(w, clock)
	})})
	r.add(Scenario{Name: "caching-proxy", Group: GroupStructural, Title: "Caching Proxy", Run: func(w io.Writer, _ []string) error {
		return proxy.DemoCaching(w)
	}})

	// practice
	r.add(Scenario{Name: "practice-adapter", Group: GroupPractice, Title: "Payment Adapter", Run: func(w io.Writer, _ []string) error {
		return adapter.DemoPayment(w)
	}})
	r.add(Scenario{Name: "practice-builder", Group: GroupPractice, Title: "User Builder", Run: func(w io.Writer, _ []string) error {
		return builder.DemoUser(w)
	}})
	r.add(Scenario{Name: "practice-decorator", Group: GroupPractice, Title: "Coffee Decorator", Run: noArgs(decorator.DemoCoffee)})
	r.add(Scenario{Name: "practice-factory-method", Group: GroupPractice, Title: "Shape Factory", Run: func(w io.Writer, args []string) error {
		return factorymethod.DemoShapes(w, args...)
	}})
	r.add(Scenario{Name: "practice-observer", Group: GroupPractice, Title: "Stock Observer", Run: noArgs(observer.DemoStock)})
	r.add(Scenario{Name: "practice-singleton", Group: GroupPractice, Title: "Logger Singleton", Run: noArgs(singleton.DemoLogger)})
	r.add(Scenario{Name: "practice-strategy", Group: GroupPractice, Title: "Discount Strategy", Run: runDiscount})

	r.sort()
	return r
}

func noArgs(demo func(w io.Writer)) RunFunc {
	return func(w io.Writer, _ []string) error {
		demo(w)
		return nil
	}
}

// runDiscount takes an optional amount, defaultDiscountAmount otherwise, and an optional discount kind.
// Without a kind every discount is printed
func runDiscount(w io.Writer, args []string) error {
	amount := defaultDiscountAmount
	if len(args) > 0 {
		parsed, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidAmount, args[0])
		}
		amount = parsed
	}
	if len(args) > 1 {
		return strategy.DemoDiscountKind(w, amount, args[1])
	}
	strategy.DemoDiscount(w, amount)
	return nil
}
