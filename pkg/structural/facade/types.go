/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package facade

import "io"

type CPU struct {
	w io.Writer
}

type Memory struct {
	w io.Writer
}

type HardDrive struct {
	w io.Writer
}

// Computer hides the boot sequence of its subsystems
type Computer struct {
	cpu    *CPU
	memory *Memory
	hd     *HardDrive
}
