package cpu

import "github.com/nes6502/nescpu/memory"

// The handlers in this file implement the commonly emulated unofficial
// (undocumented) opcodes: combinations of two official ALU operations
// wired to the same read-modify-write cycle (SLO/RLA/SRE/RRA/DCP/ISC),
// dual load/store opcodes (SAX/LAX), and the handful of "unstable"
// opcodes whose result depends on incidental bus behavior rather than
// a clean logical operation (ANC/ALR/ARR/AXS/LAS/XAA/SHY/SHX/AHX/TAS),
// plus KIL/JAM.

// execSLO: ASL the memory operand, then OR it into A.
func execSLO(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v, carryOut := asl(bus.Read8(res.Addr))
	bus.Write8(res.Addr, v)
	c.setFlag(FlagCarry, carryOut)
	c.A |= v
	c.setNZ(c.A)
}

// execRLA: ROL the memory operand, then AND it into A.
func execRLA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v, carryOut := rol(bus.Read8(res.Addr), c.flag(FlagCarry))
	bus.Write8(res.Addr, v)
	c.setFlag(FlagCarry, carryOut)
	c.A &= v
	c.setNZ(c.A)
}

// execSRE: LSR the memory operand, then EOR it into A.
func execSRE(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v, carryOut := lsr(bus.Read8(res.Addr))
	bus.Write8(res.Addr, v)
	c.setFlag(FlagCarry, carryOut)
	c.A ^= v
	c.setNZ(c.A)
}

// execRRA: ROR the memory operand, then ADC it into A. The carry out of
// the rotate becomes the carry in of the add.
func execRRA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v, carryOut := ror(bus.Read8(res.Addr), c.flag(FlagCarry))
	bus.Write8(res.Addr, v)
	c.setFlag(FlagCarry, carryOut)
	c.addWithCarry(v)
}

// execSAX stores A AND X with no flag effects.
func execSAX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	bus.Write8(res.Addr, c.A&c.X)
}

// execLAX loads the same byte into both A and X.
func execLAX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v := c.readOperand(bus, mode, res)
	c.A = v
	c.X = v
	c.setNZ(v)
}

// execDCP: DEC the memory operand, then CMP A against it.
func execDCP(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v := bus.Read8(res.Addr) - 1
	bus.Write8(res.Addr, v)
	c.compare(c.A, v)
}

// execISC (a.k.a. ISB): INC the memory operand, then SBC it from A.
func execISC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v := bus.Read8(res.Addr) + 1
	bus.Write8(res.Addr, v)
	c.addWithCarry(v ^ 0xFF)
}

// execANC: AND immediate, then copy the sign bit of the result into
// CARRY (as if the result had been shifted into a 9th bit).
func execANC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A &= res.Value
	c.setNZ(c.A)
	c.setFlag(FlagCarry, c.A&0x80 != 0)
}

// execALR (a.k.a. ASR): AND immediate, then LSR the accumulator.
func execALR(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A &= res.Value
	v, carryOut := lsr(c.A)
	c.A = v
	c.setFlag(FlagCarry, carryOut)
	c.setNZ(c.A)
}

// execARR: AND immediate, then ROR the accumulator, but CARRY comes from
// bit 6 of the rotated result and OVERFLOW from bit 6 XOR bit 5, rather
// than from the bit rotated out.
func execARR(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A &= res.Value
	v, _ := ror(c.A, c.flag(FlagCarry))
	c.A = v
	c.setFlag(FlagCarry, v&0x40 != 0)
	c.setFlag(FlagOverflow, ((v>>6)^(v>>5))&0x01 != 0)
	c.setNZ(v)
}

// execAXS (a.k.a. SBX): X := (A AND X) - immediate, unsigned, with
// CARRY set when no borrow was needed.
func execAXS(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	t := c.A & c.X
	m := res.Value
	c.setFlag(FlagCarry, t >= m)
	c.X = t - m
	c.setNZ(c.X)
}

// execLAS: AND the memory operand with SP, then load the result into
// A, X and SP all at once.
func execLAS(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	v := c.readOperand(bus, mode, res) & c.SP
	c.A = v
	c.X = v
	c.SP = v
	c.setNZ(v)
}

// execXAA: A := (A OR 0xEE) AND X AND immediate. The 0xEE constant
// models the chip's unstable internal bus bias observed on real
// hardware; NZ follows the result.
func execXAA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A = (c.A | 0xEE) & c.X & res.Value
	c.setNZ(c.A)
}

// execOAL (a.k.a. LXA/ATX), opcode 0xAB: like XAA but without the AND
// with X, and the result is written into both A and X.
func execOAL(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A = (c.A | 0xEE) & res.Value
	c.X = c.A
	c.setNZ(c.A)
}

// unstableStore implements the shared SHY/SHX/AHX/TAS core: the stored
// byte is storedReg AND (high byte of the pre-index base address + 1);
// when indexing crossed a page, the effective high address byte is
// additionally replaced by that same stored byte (the documented
// "unstable" behavior these opcodes are known for).
func unstableStore(bus memory.Bus, res addrResult, storedReg, index uint8) uint8 {
	base := res.Addr - uint16(index)
	highPlus1 := uint8(base>>8) + 1
	value := storedReg & highPlus1
	addr := res.Addr
	if res.PageCrossed {
		addr = uint16(value)<<8 | (res.Addr & 0x00FF)
	}
	bus.Write8(addr, value)
	return value
}

func execSHY(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	unstableStore(bus, res, c.Y, c.X)
}

func execSHX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	unstableStore(bus, res, c.X, c.Y)
}

func execAHX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	unstableStore(bus, res, c.A&c.X, c.Y)
}

func execTAS(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.SP = c.A & c.X
	unstableStore(bus, res, c.SP, c.Y)
}

// execKIL models the KIL/JAM opcodes as a no-op that consumes no
// further bytes, billed at a fixed 3 cycles by the table. Real
// hardware locks up; reproducing that would mean Step never returns,
// which conformance vectors don't exercise.
func execKIL(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.Halted = true
	c.haltOpcode = bus.Read8(c.PC - 1)
}
