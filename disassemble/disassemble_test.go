package disassemble

import (
	"strings"
	"testing"

	"github.com/nes6502/nescpu/memory"
)

func TestStepImmediate(t *testing.T) {
	bus := memory.NewFlatRAM()
	bus.Write8(0x0600, 0xA9) // LDA #$42
	bus.Write8(0x0601, 0x42)

	text, n := Step(0x0600, bus)
	if n != 2 {
		t.Fatalf("advance = %d, want 2", n)
	}
	if !strings.Contains(text, "LDA") || !strings.Contains(text, "#42") {
		t.Fatalf("unexpected disassembly: %q", text)
	}
}

func TestStepImplied(t *testing.T) {
	bus := memory.NewFlatRAM()
	bus.Write8(0x0600, 0xEA) // NOP

	text, n := Step(0x0600, bus)
	if n != 1 {
		t.Fatalf("advance = %d, want 1", n)
	}
	if !strings.Contains(text, "NOP") {
		t.Fatalf("unexpected disassembly: %q", text)
	}
}

func TestStepAbsoluteIndexed(t *testing.T) {
	bus := memory.NewFlatRAM()
	bus.Write8(0x0600, 0xBD) // LDA abs,X
	bus.Write8(0x0601, 0x34)
	bus.Write8(0x0602, 0x12)

	text, n := Step(0x0600, bus)
	if n != 3 {
		t.Fatalf("advance = %d, want 3", n)
	}
	if !strings.Contains(text, "LDA 1234,X") {
		t.Fatalf("unexpected disassembly: %q", text)
	}
}

func TestStepRelativeShowsTarget(t *testing.T) {
	bus := memory.NewFlatRAM()
	bus.Write8(0x0600, 0xF0) // BEQ
	bus.Write8(0x0601, 0x02)

	text, n := Step(0x0600, bus)
	if n != 2 {
		t.Fatalf("advance = %d, want 2", n)
	}
	if !strings.Contains(text, "(0604)") {
		t.Fatalf("expected branch target 0604 in %q", text)
	}
}
