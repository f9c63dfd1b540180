/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package facade

import "fmt"

func (c *CPU) Start() {
	fmt.Fprintln(c.w, "CPU started...")
}

func (m *Memory) Load() {
	fmt.Fprintln(m.w, "Memory loaded...")
}

func (h *HardDrive) Read() {
	fmt.Fprintln(h.w, "Hard drive read...")
}

// TurnOn boots the computer's own subsystems: CPU, hard drive, memory
func (c *Computer) TurnOn() {
	c.cpu.Start()
	c.hd.Read()
	c.memory.Load()
}
