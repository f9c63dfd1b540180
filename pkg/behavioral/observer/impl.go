/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package observer

import (
	"fmt"

	"golang.org/x/exp/slices"
)

func (p *Publisher) Attach(observer IObserver) {
	if slices.Contains(p.observers, observer) {
		fmt.Fprintln(p.w, "Publisher: Observer already attached")
		return
	}
	fmt.Fprintln(p.w, "Publisher: Attached an observer.")
	p.observers = append(p.observers, observer)
}

func (p *Publisher) Detach(observer IObserver) {
	idx := slices.Index(p.observers, observer)
	if idx < 0 {
		fmt.Fprintln(p.w, "Publisher: Nonexistent observer.")
		return
	}
	p.observers = slices.Delete(p.observers, idx, idx+1)
	fmt.Fprintln(p.w, "Subject: Detached an observer.")
}

func (p *Publisher) Notify() {
	fmt.Fprintln(p.w, "Subject: Notifying observers...")
	for _, observer := range p.observers {
		observer.Update(p)
	}
}

// SomeBusinessLogic changes the state to a random value in [1, 10] and notifies observers
func (p *Publisher) SomeBusinessLogic() {
	fmt.Fprintln(p.w, "\nPublisher: I'm doing something important.")
	p.State = p.intn(maxRandomState) + 1

	fmt.Fprintf(p.w, "\nPublisher: My state just changed to %d\n", p.State)
	p.Notify()
}

func (o *ObserverA) Update(publisher IPublisher) {
	if p, ok := publisher.(*Publisher); ok && p.State < 10 {
		fmt.Fprintln(o.w, "ConcreteObserverA: Reacted to the event.")
	}
}

func (o *ObserverB) Update(publisher IPublisher) {
	if p, ok := publisher.(*Publisher); ok && (p.State == 0 || p.State >= 2) {
		fmt.Fprintln(o.w, "ConcreteObserverB: Reacted to the event.")
	}
}

func (s *Stock) Price() int {
	return s.price
}

func (s *Stock) Attach(observer IPriceObserver) {
	s.observers = append(s.observers, observer)
}

// Detach removes every occurrence of the observer
func (s *Stock) Detach(observer IPriceObserver) {
	kept := s.observers[:0]
	for _, o := range s.observers {
		if o != observer {
			kept = append(kept, o)
		}
	}
	clear(s.observers[len(kept):])
	s.observers = kept
}

func (s *Stock) SetPrice(price int) {
	s.price = price
	s.Notify()
}

func (s *Stock) Notify() {
	for _, observer := range s.observers {
		observer.PriceChanged(s.price)
	}
}

func (t *Trader) PriceChanged(price int) {
	fmt.Fprintf(t.w, "Trader tracks new price: %d\n", price)
}
