/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package observer

import "io"

func Demo(w io.Writer, intn IntnFunc) {
	publisher := NewPublisher(w, intn)

	observer1 := NewObserverA(w)
	publisher.Attach(observer1)

	observer2 := NewObserverB(w)
	publisher.Attach(observer2)

	publisher.SomeBusinessLogic()
	publisher.SomeBusinessLogic()

	publisher.Detach(observer2)

	publisher.SomeBusinessLogic()
}

// DemoStock shows two traders following a stock price
func DemoStock(w io.Writer) {
	stock := NewStock()
	trader1 := NewTrader(w)
	stock.Attach(trader1)
	stock.SetPrice(100)

	trader2 := NewTrader(w)
	stock.Attach(trader2)
	stock.SetPrice(200)

	stock.Detach(trader1)
	stock.SetPrice(250)
}
