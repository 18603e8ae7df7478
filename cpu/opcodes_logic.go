package cpu

import "github.com/nes6502/nescpu/memory"

func execAND(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A &= c.readOperand(bus, mode, res)
	c.setNZ(c.A)
}

func execORA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A |= c.readOperand(bus, mode, res)
	c.setNZ(c.A)
}

func execEOR(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A ^= c.readOperand(bus, mode, res)
	c.setNZ(c.A)
}

// execBIT implements BIT: NEGATIVE and OVERFLOW come straight from bits
// 7 and 6 of the memory operand, ZERO from A AND M. A itself is never
// modified.
func execBIT(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	m := c.readOperand(bus, mode, res)
	c.setFlag(FlagNegative, m&0x80 != 0)
	c.setFlag(FlagOverflow, m&0x40 != 0)
	c.setFlag(FlagZero, m&c.A == 0)
}
