package cpu

import "github.com/nes6502/nescpu/memory"

// execLDA, execLDX and execLDY implement the three load instructions.
// All three share the NZ flag rule: NEGATIVE mirrors bit 7 of the
// loaded byte, ZERO mirrors whether it's zero.
func execLDA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A = c.readOperand(bus, mode, res)
	c.setNZ(c.A)
}

func execLDX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.X = c.readOperand(bus, mode, res)
	c.setNZ(c.X)
}

func execLDY(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.Y = c.readOperand(bus, mode, res)
	c.setNZ(c.Y)
}

// execSTA, execSTX and execSTY store a register to memory without
// touching any flags.
func execSTA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	bus.Write8(res.Addr, c.A)
}

func execSTX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	bus.Write8(res.Addr, c.X)
}

func execSTY(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	bus.Write8(res.Addr, c.Y)
}
