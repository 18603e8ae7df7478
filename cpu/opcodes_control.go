package cpu

import "github.com/nes6502/nescpu/memory"

// execJMP covers both JMP absolute and JMP (indirect); decode has
// already resolved res.Addr for either mode, including reproducing the
// indirect page-wrap hardware bug.
func execJMP(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.PC = res.Addr
}

// execJSR pushes the address of the JSR instruction's own last byte
// (PC, having already advanced past both operand bytes, minus one) and
// jumps to the target.
func execJSR(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.push16(bus, c.PC-1)
	c.PC = res.Addr
}

// execRTS pops the return address and adds one, undoing the JSR -1.
func execRTS(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.PC = c.pop16(bus) + 1
}

// execRTI restores flags (BREAK cleared, UNUSED set) and jumps straight
// to the popped address with no adjustment.
func execRTI(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.restoreP(c.pop(bus))
	c.PC = c.pop16(bus)
}

// execBRK skips the signature byte after the opcode, pushes the
// resulting return address and P with BREAK/UNUSED set, raises
// INTERRUPT_DISABLE and jumps through the IRQ vector.
func execBRK(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.PC++
	c.push16(bus, c.PC)
	c.push(bus, c.pushableP())
	c.setFlag(FlagInterruptDisable, true)
	c.PC = memory.Read16(bus, IRQVector)
}

func execPHA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.push(bus, c.A)
}

func execPLA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A = c.pop(bus)
	c.setNZ(c.A)
}

func execPHP(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.push(bus, c.pushableP())
}

func execPLP(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.restoreP(c.pop(bus))
}

func execTAX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.X = c.A
	c.setNZ(c.X)
}

func execTAY(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.Y = c.A
	c.setNZ(c.Y)
}

func execTXA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A = c.X
	c.setNZ(c.A)
}

func execTYA(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.A = c.Y
	c.setNZ(c.A)
}

func execTSX(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.X = c.SP
	c.setNZ(c.X)
}

// execTXS copies X into SP with no flag effects; SP is not a value the
// NZ rule applies to.
func execTXS(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.SP = c.X
}

func execCLC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.setFlag(FlagCarry, false)
}

func execSEC(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.setFlag(FlagCarry, true)
}

func execCLI(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.setFlag(FlagInterruptDisable, false)
}

func execSEI(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.setFlag(FlagInterruptDisable, true)
}

func execCLV(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.setFlag(FlagOverflow, false)
}

func execCLD(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.setFlag(FlagDecimalMode, false)
}

func execSED(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	c.setFlag(FlagDecimalMode, true)
}

// execNOP covers both the official single-byte NOP and the unofficial
// multi-byte NOPs that only differ in addressing mode (and therefore
// cycle cost, already billed by the table). The multi-byte forms still
// touch the bus at their operand address, matching real hardware, but
// discard whatever they read.
func execNOP(c *Chip, bus memory.Bus, mode addrMode, res addrResult) {
	if mode != modeImplied && mode != modeAccumulator {
		_ = c.readOperand(bus, mode, res)
	}
}
