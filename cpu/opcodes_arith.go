package cpu

import "github.com/nes6502/nescpu/memory"

// addWithCarry implements the shared ADC/SBC core: r = A + m + carry-in
// (9 bit). CARRY is bit 8 of r. OVERFLOW is set when the two operands
// share a sign that differs from the result's sign. SBC reaches this
// with m already complemented (m XOR 0xFF), which reproduces the
// borrow-via-carry semantics of the real ALU, including the edge cases
// around a missing carry-in.
func (c *Chip) addWithCarry(m uint8) {
	carryIn := uint16(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	a := c.A
	sum := uint16(a) + uint16(m) + carryIn
	result := uint8(sum)
	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (a^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setNZ(c.A)
}

func execADC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	m := c.readOperand(bus, mode, res)
	c.addWithCarry(m)
}

func execSBC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	m := c.readOperand(bus, mode, res)
	c.addWithCarry(m ^ 0xFF)
}

// compare implements the shared CMP/CPX/CPY core: an 8 bit subtraction
// whose result only feeds NZ, with CARRY set per the canonical
// reg >= M (unsigned) rule rather than against the subtracted result.
func (c *Chip) compare(reg, m uint8) {
	c.setFlag(FlagCarry, reg >= m)
	c.setNZ(reg - m)
}

func execCMP(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.compare(c.A, c.readOperand(bus, mode, res))
}

func execCPX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.compare(c.X, c.readOperand(bus, mode, res))
}

func execCPY(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.compare(c.Y, c.readOperand(bus, mode, res))
}

// execINC and execDEC are memory read-modify-write instructions.
func execINC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v := bus.Read8(res.Addr) + 1
	bus.Write8(res.Addr, v)
	c.setNZ(v)
}

func execDEC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v := bus.Read8(res.Addr) - 1
	bus.Write8(res.Addr, v)
	c.setNZ(v)
}

func execINX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.X++
	c.setNZ(c.X)
}

func execINY(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.Y++
	c.setNZ(c.Y)
}

func execDEX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.X--
	c.setNZ(c.X)
}

func execDEY(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.Y--
	c.setNZ(c.Y)
}
