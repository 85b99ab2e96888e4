// vdc.go - V9958-family VDC shell: register file, VRAM, and the
// port-1 address/command toggle-sequence protocol.

package main

import (
	"fmt"
	"os"
)

const (
	vdcRegCount = 47
	vdcVRAMSize = 128 * 1024

	vdcModeText1 = 0b00001
)

type vdcMode struct {
	cols, rows   int
	cellW, cellH int
}

// Canonical geometry per mode; only TEXT1 has an implemented renderer.
var vdcModes = map[int]vdcMode{
	vdcModeText1: {cols: 40, rows: 24, cellW: 6, cellH: 8},
}

// VDC owns the register file, VRAM, and the port-protocol toggle.
// Drawing is delegated to a Surface backend injected by the caller.
type VDC struct {
	Regs [vdcRegCount]byte
	VRAM [vdcVRAMSize]byte

	toggle bool
	latch  byte

	surface Surface

	width, height int
	enabled       bool
	mode          int

	DebugIO bool
}

func NewVDC(surface Surface) *VDC {
	return &VDC{surface: surface}
}

// In reads VDC port p (0-3); only port 0 (VRAM data) is meaningfully
// readable, and even that access path is out of scope per spec.md.
func (v *VDC) In(p byte) byte {
	if v.DebugIO {
		fmt.Fprintf(os.Stderr, "vdc: read port %d\n", p)
	}
	return 0
}

// Out writes VDC port p (0-3). Port 1 runs the two-write
// address/command sequence; ports 0, 2, 3 are unspecified stubs.
func (v *VDC) Out(p byte, value byte) {
	if v.DebugIO {
		fmt.Fprintf(os.Stderr, "vdc: write port %d = 0x%02X\n", p, value)
	}
	if p != 1 {
		return
	}

	if !v.toggle {
		v.latch = value
		v.toggle = true
		v.updateGeometry()
		return
	}

	reg := value & 0x3F
	if int(reg) < vdcRegCount {
		v.Regs[reg] = v.latch
	}
	v.toggle = false
	v.updateGeometry()
}

// updateGeometry re-evaluates screen-enable and mode bits after every
// port-1 write, per spec.md §4.4.1.
func (v *VDC) updateGeometry() {
	r0, r1 := v.Regs[0], v.Regs[1]

	v.enabled = r1&0x40 != 0

	mode := 0
	if r1&0x10 != 0 {
		mode |= 1 << 0
	}
	if r1&0x08 != 0 {
		mode |= 1 << 1
	}
	if r0&0x02 != 0 {
		mode |= 1 << 2
	}
	if r0&0x04 != 0 {
		mode |= 1 << 3
	}
	if r0&0x08 != 0 {
		mode |= 1 << 4
	}
	v.mode = mode

	if m, ok := vdcModes[mode]; ok {
		v.width = m.cols * m.cellW
		v.height = m.rows * m.cellH
		v.surface.Resize(v.width, v.height)
	} else {
		fmt.Fprintf(os.Stderr, "vdc: unimplemented mode %05b\n", mode)
	}
}

// Draw clears the surface, dispatches on the current mode when the
// screen is enabled, and flips the surface.
func (v *VDC) Draw() {
	v.surface.Clear(0, 0, 0)
	if v.enabled {
		switch v.mode {
		case vdcModeText1:
			v.drawText1()
		default:
			fmt.Fprintf(os.Stderr, "vdc: draw: unimplemented mode %05b\n", v.mode)
		}
	}
	v.surface.Flip()
}
