// cpu_z80_flags.go - flag-update primitives shared by the opcode
// bodies, matching the abstract primitive table in spec.md §4.5.2.
// carry/borrow are bit-transition tests on a captured pre/post byte
// pair (carry: bit was 1, now 0; borrow: bit was 0, now 1), applied to
// bit 7 for 8-bit and 16-bit-high-byte ops and to bit 3 for half
// carry/borrow — the same shape as the original source's carry()/
// borrow() helpers, generalised to whichever bit the caller asks for.

package main

import "math/bits"

func (c *CPU_Z80) setAdd() { c.SetFlag(z80FlagN, false) }
func (c *CPU_Z80) setSub() { c.SetFlag(z80FlagN, true) }

func (c *CPU_Z80) setZero(v byte) { c.SetFlag(z80FlagZ, v == 0) }
func (c *CPU_Z80) setSign(v byte) { c.SetFlag(z80FlagS, v&0x80 != 0) }

// setParity sets P/V to even parity of v (1 if the popcount is even).
func (c *CPU_Z80) setParity(v byte) {
	c.SetFlag(z80FlagPV, bits.OnesCount8(v)%2 == 0)
}

func (c *CPU_Z80) setUndoc(v byte) {
	c.SetFlag(z80FlagY, v&z80FlagY != 0)
	c.SetFlag(z80FlagX, v&z80FlagX != 0)
}

func (c *CPU_Z80) setCarryFrom(pre, post byte) {
	c.SetFlag(z80FlagC, pre&0x80 != 0 && post&0x80 == 0)
}

func (c *CPU_Z80) setBorrowFrom(pre, post byte) {
	c.SetFlag(z80FlagC, pre&0x80 == 0 && post&0x80 != 0)
}

func (c *CPU_Z80) setHalfCarryFrom(pre, post byte) {
	c.SetFlag(z80FlagH, pre&0x08 != 0 && post&0x08 == 0)
}

func (c *CPU_Z80) setHalfBorrowFrom(pre, post byte) {
	c.SetFlag(z80FlagH, pre&0x08 == 0 && post&0x08 != 0)
}

// setOverflowFrom/setUnderflowFrom use the corrected signed-overflow
// test from spec.md Open Question 5, not the simple bit-7
// carry/borrow the original source substituted for it.
func (c *CPU_Z80) setOverflowFrom(pre, operand, result byte) {
	c.SetFlag(z80FlagPV, ((pre^operand^0x80)&(pre^result)&0x80) != 0)
}

func (c *CPU_Z80) setUnderflowFrom(pre, operand, result byte) {
	c.SetFlag(z80FlagPV, ((pre^operand)&(pre^result)&0x80) != 0)
}

// add8 computes A+operand(+carry), updates all flags, and returns the
// result; used by both ADD and ADC.
func (c *CPU_Z80) add8(a, operand byte, carry bool) byte {
	var cIn byte
	if carry {
		cIn = 1
	}
	result := a + operand + cIn
	c.setHalfCarryFrom(a, result)
	c.setCarryFrom(a, result)
	c.setOverflowFrom(a, operand, result)
	c.setZero(result)
	c.setSign(result)
	c.setUndoc(result)
	c.setAdd()
	return result
}

// sub8 computes a-operand(-carry), updates all flags, and returns the
// result; used by SUB, SBC, and CP (the caller discards the result
// for CP).
func (c *CPU_Z80) sub8(a, operand byte, carry bool) byte {
	var cIn byte
	if carry {
		cIn = 1
	}
	result := a - operand - cIn
	c.setHalfBorrowFrom(a, result)
	c.setBorrowFrom(a, result)
	c.setUnderflowFrom(a, operand, result)
	c.setZero(result)
	c.setSign(result)
	c.setUndoc(result)
	c.setSub()
	return result
}

func (c *CPU_Z80) and8(a, operand byte) byte {
	result := a & operand
	c.SetFlag(z80FlagC, false)
	c.setAdd()
	c.SetFlag(z80FlagH, true)
	c.setParity(result)
	c.setZero(result)
	c.setSign(result)
	c.setUndoc(result)
	return result
}

func (c *CPU_Z80) or8(a, operand byte) byte {
	result := a | operand
	c.SetFlag(z80FlagC, false)
	c.setAdd()
	c.SetFlag(z80FlagH, false)
	c.setParity(result)
	c.setZero(result)
	c.setSign(result)
	c.setUndoc(result)
	return result
}

func (c *CPU_Z80) xor8(a, operand byte) byte {
	result := a ^ operand
	c.SetFlag(z80FlagC, false)
	c.setAdd()
	c.SetFlag(z80FlagH, false)
	c.setParity(result)
	c.setZero(result)
	c.setSign(result)
	c.setUndoc(result)
	return result
}

func (c *CPU_Z80) inc8(v byte) byte {
	result := v + 1
	c.setHalfCarryFrom(v, result)
	c.setOverflowFrom(v, 1, result)
	c.setZero(result)
	c.setSign(result)
	c.setUndoc(result)
	c.setAdd()
	return result
}

func (c *CPU_Z80) dec8(v byte) byte {
	result := v - 1
	c.setHalfBorrowFrom(v, result)
	c.setUnderflowFrom(v, 1, result)
	c.setZero(result)
	c.setSign(result)
	c.setUndoc(result)
	c.setSub()
	return result
}

// addHL16 adds operand to hl, updating C/H/N from the HIGH BYTE of hl
// captured before and after the add (spec.md §4.5.2: "pre" must be the
// high byte alone, not h|b as the original source has it for some
// opcodes), and returns the new value.
func (c *CPU_Z80) addHL16(hl, operand uint16) uint16 {
	pre := byte(hl >> 8)
	result := hl + operand
	post := byte(result >> 8)
	c.setCarryFrom(pre, post)
	c.setHalfCarryFrom(pre, post)
	c.setAdd()
	return result
}

// sbcHL16 subtracts operand and the carry flag from hl, flagging from
// the high byte exactly as addHL16 does, and sets Z/S/PV too (SBC HL
// is the only 16-bit op in the required set that touches them).
func (c *CPU_Z80) sbcHL16(hl, operand uint16) uint16 {
	var cIn uint16
	if c.Flag(z80FlagC) {
		cIn = 1
	}
	pre := byte(hl >> 8)
	result := hl - operand - cIn
	post := byte(result >> 8)
	c.setBorrowFrom(pre, post)
	c.setHalfBorrowFrom(pre, post)
	c.setSub()
	c.SetFlag(z80FlagZ, result == 0)
	c.SetFlag(z80FlagS, result&0x8000 != 0)
	c.SetFlag(z80FlagPV, (hl^operand)&(hl^result)&0x8000 != 0)
	return result
}
