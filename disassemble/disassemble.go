// Package disassemble renders 6502 instructions at a given PC as
// human-readable text, without interpreting them: a JMP into the
// middle of a data table disassembles as garbage just like it would
// on real hardware.
package disassemble

import (
	"fmt"

	"github.com/nes6502/nescpu/cpu"
	"github.com/nes6502/nescpu/memory"
)

// Step disassembles the instruction at pc and returns its text plus
// how many bytes forward the PC should move to reach the next
// instruction. This always reads up to 2 bytes past pc, so the
// caller must make sure that range is mapped.
func Step(pc uint16, bus memory.Bus) (string, int) {
	op := bus.Read8(pc)
	pc1 := bus.Read8(pc + 1)
	pc2 := bus.Read8(pc + 2)
	pc116 := uint16(int16(int8(pc1)))

	name := cpu.Mnemonic(op)
	count := 1 + cpu.OperandBytes(op)

	out := fmt.Sprintf("%.4X %.2X ", pc, op)
	switch cpu.ModeName(op) {
	case "immediate":
		out += fmt.Sprintf("%.2X      %s #%.2X       ", pc1, name, pc1)
	case "zeropage":
		out += fmt.Sprintf("%.2X      %s %.2X        ", pc1, name, pc1)
	case "zeropagex":
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", pc1, name, pc1)
	case "zeropagey":
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", pc1, name, pc1)
	case "indirectx":
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", pc1, name, pc1)
	case "indirecty":
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", pc1, name, pc1)
	case "absolute":
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", pc1, pc2, name, pc2, pc1)
	case "absolutex":
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", pc1, pc2, name, pc2, pc1)
	case "absolutey":
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", pc1, pc2, name, pc2, pc1)
	case "indirect":
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", pc1, pc2, name, pc2, pc1)
	case "implied", "accumulator":
		out += fmt.Sprintf("        %s           ", name)
	case "relative":
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", pc1, name, pc1, pc+pc116+2)
	default:
		panic(fmt.Sprintf("disassemble: unknown mode for opcode %.2X", op))
	}
	return out, count
}
