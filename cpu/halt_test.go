package cpu

import (
	"testing"

	"github.com/nes6502/nescpu/memory"
)

// TestKILHaltsOnEveryKnownOpcode exercises every undocumented KIL/JAM
// opcode: executing one must flag the chip halted, record which opcode
// caused it, and leave every other register untouched.
func TestKILHaltsOnEveryKnownOpcode(t *testing.T) {
	haltOpcodes := []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2}

	for _, op := range haltOpcodes {
		bus := memory.NewFlatRAM()
		bus.Write8(0x0600, op)

		c := New()
		c.PC = 0x0600
		c.A, c.X, c.Y, c.SP = 0x11, 0x22, 0x33, 0xF0
		wantP := c.P

		c.Step(bus)

		if !c.Halted {
			t.Errorf("opcode 0x%.2X: Halted = false, want true", op)
		}
		if c.haltOpcode != op {
			t.Errorf("opcode 0x%.2X: haltOpcode = 0x%.2X, want 0x%.2X", op, c.haltOpcode, op)
		}
		if c.A != 0x11 || c.X != 0x22 || c.Y != 0x33 || c.SP != 0xF0 || c.P != wantP {
			t.Errorf("opcode 0x%.2X: registers disturbed by halt", op)
		}
		if c.PC != 0x0601 {
			t.Errorf("opcode 0x%.2X: PC = 0x%.4X, want 0x0601", op, c.PC)
		}
		if c.Cycles != 3 {
			t.Errorf("opcode 0x%.2X: Cycles = %d, want 3", op, c.Cycles)
		}
	}
}

// TestPowerOnClearsHalt confirms a fresh PowerOn recovers from a halt,
// matching real hardware's behavior on reset.
func TestPowerOnClearsHalt(t *testing.T) {
	bus := memory.NewFlatRAM()
	bus.Write8(0x0600, 0x02) // KIL

	c := New()
	c.PC = 0x0600
	c.Step(bus)
	if !c.Halted {
		t.Fatal("expected Halted after KIL")
	}

	c.PowerOn()
	if c.Halted {
		t.Error("PowerOn did not clear Halted")
	}
	if c.haltOpcode != 0 {
		t.Error("PowerOn did not clear haltOpcode")
	}
}
