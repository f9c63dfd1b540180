/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package chain

import (
	"fmt"
	"io"
)

func (h *handler) SetNext(next IHandler) IHandler {
	h.next = next
	return next
}

func (h *handler) Handle(request string) string {
	if h.next != nil {
		return h.next.Handle(request)
	}
	return ""
}

func (a *animalHandler) Handle(request string) string {
	if request == a.food {
		return a.answer(request)
	}
	return a.handler.Handle(request)
}

// Client asks the chain about every food and prints who took it
func Client(w io.Writer, h IHandler) {
	for _, food := range clientFoods {
		fmt.Fprintf(w, "Client: Who wants a %s?\n", food)
		if result := h.Handle(food); result != "" {
			fmt.Fprintln(w, result)
		} else {
			fmt.Fprintf(w, "%s was left untouched.\n", food)
		}
	}
}
