package cpu

import "github.com/nes6502/nescpu/memory"

// asl, lsr, rol and ror compute the new byte value and the bit that
// left the register, which becomes the new CARRY. ROL/ROR also inject
// the old CARRY into the vacated bit.
func asl(v uint8) (uint8, bool) {
	return v << 1, v&0x80 != 0
}

func lsr(v uint8) (uint8, bool) {
	return v >> 1, v&0x01 != 0
}

func rol(v uint8, carryIn bool) (uint8, bool) {
	out := v<<1 | b2u8(carryIn)
	return out, v&0x80 != 0
}

func ror(v uint8, carryIn bool) (uint8, bool) {
	out := v>>1 | (b2u8(carryIn) << 7)
	return out, v&0x01 != 0
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// shiftOp applies one of the four shift/rotate functions to either the
// accumulator (mode == modeAccumulator) or the memory operand,
// updating CARRY and NZ from the result.
func (c *Chip) shiftOp(bus memory.Bus, mode addrMode, res addrResult, op func(uint8) (uint8, bool)) {
	if mode == modeAccumulator {
		v, carryOut := op(c.A)
		c.A = v
		c.setFlag(FlagCarry, carryOut)
		c.setNZ(c.A)
		return
	}
	v, carryOut := op(bus.Read8(res.Addr))
	bus.Write8(res.Addr, v)
	c.setFlag(FlagCarry, carryOut)
	c.setNZ(v)
}

func execASL(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.shiftOp(bus, mode, res, asl)
}

func execLSR(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.shiftOp(bus, mode, res, lsr)
}

func execROL(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	carryIn := c.flag(FlagCarry)
	c.shiftOp(bus, mode, res, func(v uint8) (uint8, bool) { return rol(v, carryIn) })
}

func execROR(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	carryIn := c.flag(FlagCarry)
	c.shiftOp(bus, mode, res, func(v uint8) (uint8, bool) { return ror(v, carryIn) })
}
