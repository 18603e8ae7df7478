package cpu

import "github.com/nes6502/nescpu/memory"

// addrMode enumerates the 6502 addressing modes. The dispatch table
// tags every opcode with exactly one of these.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
	modeIndirect // JMP (ind) only.
	modeRelative // Branches only.
)

// addrResult is the transient tuple a mode decoder hands to an opcode
// handler. Addr is the effective address (meaningless for Implied,
// Accumulator and Immediate). Value carries the operand byte for
// Immediate mode, since that mode has no effective address to read
// later. PageCrossed is only ever set by the modes that can cross a
// page (absolute,X / absolute,Y / (zp),Y / relative); handlers for
// read-only opcodes in those modes use it to bill the extra cycle.
type addrResult struct {
	Addr        uint16
	Value       uint8
	PageCrossed bool
}

// decode consumes the operand bytes for mode, advancing PC past them,
// and returns the computed address/value/page-cross tuple. The opcode
// byte itself has already been consumed by Step.
func (c *Chip) decode(bus memory.Bus, mode addrMode) addrResult {
	switch mode {
	case modeImplied, modeAccumulator:
		return addrResult{}

	case modeImmediate:
		v := bus.Read8(c.PC)
		c.PC++
		return addrResult{Value: v}

	case modeZeroPage:
		zp := bus.Read8(c.PC)
		c.PC++
		return addrResult{Addr: uint16(zp)}

	case modeZeroPageX:
		zp := bus.Read8(c.PC)
		c.PC++
		return addrResult{Addr: uint16(uint8(zp + c.X))}

	case modeZeroPageY:
		zp := bus.Read8(c.PC)
		c.PC++
		return addrResult{Addr: uint16(uint8(zp + c.Y))}

	case modeAbsolute:
		addr := memory.Read16(bus, c.PC)
		c.PC += 2
		return addrResult{Addr: addr}

	case modeAbsoluteX:
		return c.decodeAbsoluteIndexed(bus, c.X)

	case modeAbsoluteY:
		return c.decodeAbsoluteIndexed(bus, c.Y)

	case modeIndirectX:
		zp := bus.Read8(c.PC)
		c.PC++
		p := uint8(zp + c.X)
		lo := bus.Read8(uint16(p))
		hi := bus.Read8(uint16(uint8(p + 1)))
		return addrResult{Addr: uint16(lo) | uint16(hi)<<8}

	case modeIndirectY:
		zp := bus.Read8(c.PC)
		c.PC++
		lo := bus.Read8(uint16(zp))
		hi := bus.Read8(uint16(uint8(zp + 1)))
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.Y)
		return addrResult{Addr: addr, PageCrossed: (base & 0xFF00) != (addr & 0xFF00)}

	case modeIndirect:
		ptr := memory.Read16(bus, c.PC)
		c.PC += 2
		lo := bus.Read8(ptr)
		// Reproduce the famous JMP (ind) page-wrap bug: the high byte
		// fetch never crosses into the next page.
		hi := bus.Read8((ptr & 0xFF00) | uint16(uint8(ptr+1)))
		return addrResult{Addr: uint16(lo) | uint16(hi)<<8}

	case modeRelative:
		off := int8(bus.Read8(c.PC))
		c.PC++
		base := c.PC
		target := uint16(int32(base) + int32(off))
		return addrResult{Addr: target, PageCrossed: (base & 0xFF00) != (target & 0xFF00)}
	}
	panic(InvalidCPUState{Reason: "decode: unknown addressing mode"})
}

// decodeAbsoluteIndexed implements absolute,X and absolute,Y, which
// differ only in which register is added.
func (c *Chip) decodeAbsoluteIndexed(bus memory.Bus, reg uint8) addrResult {
	base := memory.Read16(bus, c.PC)
	c.PC += 2
	addr := base + uint16(reg)
	return addrResult{Addr: addr, PageCrossed: (base & 0xFF00) != (addr & 0xFF00)}
}

// readOperand returns the value an opcode handler operates on: the
// immediate byte for Immediate mode, or a fresh bus read at the
// computed effective address otherwise.
func (c *Chip) readOperand(bus memory.Bus, mode addrMode, res addrResult) uint8 {
	if mode == modeImmediate {
		return res.Value
	}
	return bus.Read8(res.Addr)
}
