// cpu_z80_ops_cb.go - CB-prefixed opcode table. Required minimum names
// only RR D (0x1A) and RR E (0x1B); spec.md §4.5.3's semantics note
// ("RR r additionally updates Z,S,P/V from the result") describes RR
// as a register-indexed family rather than two one-off opcodes, so
// this builds the whole RR r row (0x18-0x1F, covering B,C,D,E,H,L,
// (HL),A) the way the teacher's initCBOps loops over register groups.
// Every other CB opcode is intentionally out of scope and falls
// through to opUnimplemented.

package main

func (c *CPU_Z80) initCBOps() {
	for i := range c.cbOps {
		opcode := byte(i)
		c.cbOps[i] = func(c *CPU_Z80) { c.opUnimplemented(opcode) }
	}

	for r := 0; r < 8; r++ {
		reg := byte(r)
		opcode := byte(0x18) + reg
		c.cbOps[opcode] = func(c *CPU_Z80) { c.opCBRR(reg) }
	}
}

// opCBRR implements RR r: rotate right through carry, C taking the bit
// rotated out, H and N cleared, and Z/S/P/V updated from the result -
// the one CB rotate the required minimum calls out explicitly. CB ops
// never redirect through IX/IY (that substitution belongs to DDCB/
// FDCB's fixed (IX+d)/(IY+d) target, handled separately), so this uses
// the plain register accessors.
func (c *CPU_Z80) opCBRR(reg byte) {
	v := c.readReg8Plain(reg)
	carryOut := v&0x01 != 0
	result := v >> 1
	if c.Flag(z80FlagC) {
		result |= 0x80
	}
	c.SetFlag(z80FlagC, carryOut)
	c.SetFlag(z80FlagH, false)
	c.SetFlag(z80FlagN, false)
	c.setZero(result)
	c.setSign(result)
	c.setParity(result)
	c.setUndoc(result)
	c.writeReg8Plain(reg, result)
}
