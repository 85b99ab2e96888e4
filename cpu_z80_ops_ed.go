// cpu_z80_ops_ed.go - ED-prefixed opcode table. Required minimum names
// only SBC HL,DE (+7 T); everything else falls through to
// opUnimplemented, matching the narrow ED scope SPEC_FULL.md's CPU
// Interpreter section describes (IM0/IM2 and the block instructions
// are explicitly out of scope).

package main

func (c *CPU_Z80) initEDOps() {
	for i := range c.edOps {
		opcode := byte(i)
		c.edOps[i] = func(c *CPU_Z80) { c.opUnimplemented(opcode) }
	}

	c.edOps[0x52] = func(c *CPU_Z80) { c.SetHL(c.sbcHL16(c.HL(), c.DE())); c.tick(7) }
}
