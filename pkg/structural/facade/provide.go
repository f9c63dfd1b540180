/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package facade

import "io"

func NewCPU(w io.Writer) *CPU {
	return &CPU{w: w}
}

func NewMemory(w io.Writer) *Memory {
	return &Memory{w: w}
}

func NewHardDrive(w io.Writer) *HardDrive {
	return &HardDrive{w: w}
}

func NewComputer(cpu *CPU, memory *Memory, hd *HardDrive) *Computer {
	return &Computer{cpu: cpu, memory: memory, hd: hd}
}
