package cpu

import "github.com/nes6502/nescpu/memory"

// execFunc is the signature every opcode handler implements. mode is
// handed alongside res so handlers that care about the Immediate
// special case (value already in hand, no address to read) can tell
// it apart from every other mode.
type execFunc func(c *Chip, bus memory.Bus, mode addrMode, res addrResult)

// opcodeEntry is one row of the 256 entry dispatch table: the decoded
// mnemonic/mode pair, its base cycle cost, whether a page-cross adds
// one more cycle, and the handler that performs the operation.
type opcodeEntry struct {
	name         string
	mode         addrMode
	cycles       uint8
	extraOnCross bool
	exec         execFunc
}

// Mnemonic returns the table's name for opcode op, mostly useful for
// tracing/disassembly tools built on this package.
func Mnemonic(op uint8) string {
	return opcodeTable[op].name
}

// ModeName returns a disassembler-friendly name for the addressing mode
// opcode op decodes with. Tools outside this package can't see addrMode
// itself, so this is the supported way to ask the table what shape an
// instruction's operand takes.
func ModeName(op uint8) string {
	switch opcodeTable[op].mode {
	case modeImplied:
		return "implied"
	case modeAccumulator:
		return "accumulator"
	case modeImmediate:
		return "immediate"
	case modeZeroPage:
		return "zeropage"
	case modeZeroPageX:
		return "zeropagex"
	case modeZeroPageY:
		return "zeropagey"
	case modeAbsolute:
		return "absolute"
	case modeAbsoluteX:
		return "absolutex"
	case modeAbsoluteY:
		return "absolutey"
	case modeIndirectX:
		return "indirectx"
	case modeIndirectY:
		return "indirecty"
	case modeIndirect:
		return "indirect"
	case modeRelative:
		return "relative"
	}
	return "unknown"
}

// OperandBytes returns how many bytes of operand follow opcode op's
// byte, so a caller walking a PRG image can advance the right amount.
func OperandBytes(op uint8) int {
	switch opcodeTable[op].mode {
	case modeImplied, modeAccumulator:
		return 0
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirect:
		return 2
	default:
		return 1
	}
}
