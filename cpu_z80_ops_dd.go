// cpu_z80_ops_dd.go - DD-prefixed (IX) opcode table. fdOps is set to
// the exact same array by NewCPU_Z80 after this runs: every body here
// reaches the index register through indexReg/indexHigh/indexLow,
// which branch on prefixMode rather than naming IX directly, so the
// same function values serve IY under an FD prefix (Step sets
// prefixMode before dispatching through ddOps or fdOps). Required
// minimum names LD IX,nn / INC IX / LD A,IXH / LD A,IXL / LD A,(IX+d);
// nothing else is in scope, so DDCB/FDCB sequences (no required
// opcode lives there) are read and reported as unknown rather than
// acted on.

package main

func (c *CPU_Z80) initDDOps() {
	for i := range c.ddOps {
		opcode := byte(i)
		c.ddOps[i] = func(c *CPU_Z80) { c.opUnimplemented(opcode) }
	}

	c.ddOps[0x21] = func(c *CPU_Z80) { c.setIndexReg(c.fetchWord()) }
	c.ddOps[0x23] = func(c *CPU_Z80) { c.setIndexReg(c.indexReg() + 1); c.tick(2) }
	c.ddOps[0x7C] = func(c *CPU_Z80) { c.A = c.indexHigh() }
	c.ddOps[0x7D] = func(c *CPU_Z80) { c.A = c.indexLow() }
	c.ddOps[0x7E] = func(c *CPU_Z80) {
		d := int8(c.fetchByte())
		addr := uint16(int32(c.indexReg()) + int32(d))
		c.A = c.read(addr)
		c.tick(5)
	}
}

// opDDCB/opFDCB read the displacement and final sub-opcode of a
// DD/FD CB sequence (4.5.1's prefix-fetch accounting applies to the
// displacement as a plain immediate byte) and report the sub-opcode as
// unknown; no DDCB/FDCB form is in the required opcode table.
func (c *CPU_Z80) opDDCB() {
	c.fetchByte()
	opcode := c.fetchOpcode()
	c.opUnimplemented(opcode)
}

func (c *CPU_Z80) opFDCB() {
	c.fetchByte()
	opcode := c.fetchOpcode()
	c.opUnimplemented(opcode)
}
