package nesbus

import (
	"testing"

	"github.com/nes6502/nescpu/cartridge"
)

func buildNROM(prgBlocks int) *cartridge.Cartridge {
	c := &cartridge.Cartridge{PRG: make([]uint8, prgBlocks*16*1024)}
	for i := range c.PRG {
		c.PRG[i] = uint8(i)
	}
	return c
}

func TestRAMMirrors(t *testing.T) {
	b, err := New(buildNROM(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Write8(0x0010, 0xAB)
	if got := b.Read8(0x0810); got != 0xAB {
		t.Errorf("mirrored read at 0x0810 = %#02x, want 0xAB", got)
	}
	if got := b.Read8(0x1810); got != 0xAB {
		t.Errorf("mirrored read at 0x1810 = %#02x, want 0xAB", got)
	}
}

func TestSRAMWindow(t *testing.T) {
	b, err := New(buildNROM(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Write8(0x6123, 0x42)
	if got := b.Read8(0x6123); got != 0x42 {
		t.Errorf("SRAM read = %#02x, want 0x42", got)
	}
}

func TestSinglePRGBankMirroredToBothWindows(t *testing.T) {
	b, err := New(buildNROM(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := b.Read8(0x8000), uint8(0); got != want {
		t.Errorf("lower window[0] = %#02x, want %#02x", got, want)
	}
	if got, want := b.Read8(0xC000), uint8(0); got != want {
		t.Errorf("upper window[0] = %#02x, want %#02x (single bank mirrors)", got, want)
	}
	if got, want := b.Read8(0xFFFF), uint8(0xFF); got != want {
		t.Errorf("upper window[last] = %#02x, want %#02x", got, want)
	}
}

func TestTwoPRGBanksDistinctWindows(t *testing.T) {
	cart := buildNROM(2)
	cart.PRG[16*1024] = 0xAA // first byte of the second bank
	b, err := New(cart)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := b.Read8(0x8000), uint8(0); got != want {
		t.Errorf("lower window[0] = %#02x, want %#02x", got, want)
	}
	if got, want := b.Read8(0xC000), uint8(0xAA); got != want {
		t.Errorf("upper window[0] = %#02x, want %#02x", got, want)
	}
}

func TestPPUWindowForwardedNotPanicking(t *testing.T) {
	b, err := New(buildNROM(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Write8(0x2000, 0x77)
	if got := b.Read8(0x2006); got != 0x77 {
		t.Errorf("forwarded PPU read = %#02x, want 0x77", got)
	}
}
