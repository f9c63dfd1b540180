/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package facade

import (
	"fmt"
	"io"
)

// Demo boots the subsystems by hand, then through the Computer facade
func Demo(w io.Writer) {
	cpu, memory, hd := NewCPU(w), NewMemory(w), NewHardDrive(w)
	cpu.Start()
	hd.Read()
	memory.Load()

	fmt.Fprintln(w)

	computer := NewComputer(NewCPU(w), NewMemory(w), NewHardDrive(w))
	computer.TurnOn()
}
