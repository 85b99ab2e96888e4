// vdc_text.go - TEXT1 character-cell renderer (40x24 cells of 6x8
// pixels, 240x192 pixels total). Supplements spec.md's deliberately
// out-of-scope drawing algorithms with one concrete mode so the
// repository can show something on screen; other modes stay stubs.

package main

import (
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Register-pointed table bases within VRAM. The pattern and name
// tables are VDC-register-relative in the real hardware; here they
// are fixed offsets derived from registers 2 (name table) and 4
// (pattern table), matching the V9958 family's register conventions.
func (v *VDC) nameTableBase() int {
	return int(v.Regs[2]&0x7F) << 10
}

func (v *VDC) patternTableBase() int {
	return int(v.Regs[4]&0x07) << 11
}

// drawText1 renders the 40x24 character grid from VRAM's name table,
// using a fixed bitmap font in place of the VDC's own 6x8 pattern
// generator.
func (v *VDC) drawText1() {
	m := vdcModes[vdcModeText1]
	nameBase := v.nameTableBase()

	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			idx := nameBase + row*m.cols + col
			if idx >= vdcVRAMSize {
				continue
			}
			v.drawGlyph(col*m.cellW, row*m.cellH, v.VRAM[idx])
		}
	}
}

// drawGlyph rasterizes basicfont's 7x13 glyph for ch, downsampled by
// nearest-neighbour to the VDC's 6x8 cell.
func (v *VDC) drawGlyph(ox, oy int, ch byte) {
	face := basicfont.Face7x13
	r := rune(ch)
	if ch < 0x20 || ch > 0x7E {
		r = ' '
	}
	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return
	}

	srcW := dr.Dx()
	srcH := dr.Dy()
	if srcW <= 0 {
		srcW = 7
	}
	if srcH <= 0 {
		srcH = 13
	}

	for y := 0; y < 8; y++ {
		srcY := maskp.Y + y*srcH/8
		for x := 0; x < 6; x++ {
			srcX := maskp.X + x*srcW/6
			_, _, _, a := mask.At(srcX, srcY).RGBA()
			if a != 0 {
				v.surface.DrawPixel(ox+x, oy+y, 255, 255, 255)
			}
		}
	}
}
