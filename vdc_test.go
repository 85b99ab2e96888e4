package main

import "testing"

type recordingSurface struct {
	resizedW, resizedH int
	cleared            bool
	flipped            bool
}

func (s *recordingSurface) Resize(w, h int)               { s.resizedW, s.resizedH = w, h }
func (s *recordingSurface) Clear(r, g, b byte)             { s.cleared = true }
func (s *recordingSurface) DrawPixel(x, y int, r, g, b byte) {}
func (s *recordingSurface) Flip()                          { s.flipped = true }

// writeReg performs the two-write port-1 address/command sequence: the
// first write latches the value, the second selects which register it
// lands in (spec.md §4.4.1).
func writeReg(v *VDC, reg, value byte) {
	v.Out(1, value)
	v.Out(1, reg)
}

func TestVDCPortOneTwoWriteSequence(t *testing.T) {
	v := NewVDC(&recordingSurface{})

	writeReg(v, 5, 0x99)

	if v.Regs[5] != 0x99 {
		t.Fatalf("Regs[5] = 0x%02X, want 0x99", v.Regs[5])
	}
	if v.toggle {
		t.Fatalf("toggle must be false again after the second write completes the sequence")
	}
}

func TestVDCEnableAndText1ModeGeometry(t *testing.T) {
	surface := &recordingSurface{}
	v := NewVDC(surface)

	writeReg(v, 1, 0x50) // bit6 = screen enable, bit4 = mode bit0 -> TEXT1

	if !v.enabled {
		t.Fatalf("screen was not marked enabled")
	}
	if v.mode != vdcModeText1 {
		t.Fatalf("mode = %05b, want TEXT1 (%05b)", v.mode, vdcModeText1)
	}
	if surface.resizedW != 40*6 || surface.resizedH != 24*8 {
		t.Fatalf("surface resized to %dx%d, want %dx%d", surface.resizedW, surface.resizedH, 40*6, 24*8)
	}
}

func TestVDCDrawFlipsTheSurfaceEvenWhenDisabled(t *testing.T) {
	surface := &recordingSurface{}
	v := NewVDC(surface)

	v.Draw()

	if !surface.cleared || !surface.flipped {
		t.Fatalf("Draw must clear and flip every frame regardless of enable state")
	}
}

func TestVDCPortsOtherThanOneAreNoOps(t *testing.T) {
	v := NewVDC(&recordingSurface{})

	v.Out(0, 0xFF)
	v.Out(2, 0xFF)
	v.Out(3, 0xFF)

	if v.toggle || v.Regs != [vdcRegCount]byte{} {
		t.Fatalf("writes to ports 0/2/3 must not touch the toggle sequence or register file")
	}
}
