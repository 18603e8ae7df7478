// Package nesbus wires a parsed cartridge.Cartridge into the CPU-visible
// memory map: 2KiB internal RAM and its mirrors, the PPU/APU register
// windows (forwarded but not interpreted — those subsystems are out of
// scope), 8KiB of cartridge SRAM, and the mapper-0 (NROM) PRG windows.
// The result satisfies memory.Bus, so it plugs directly into cpu.Chip.
package nesbus

import (
	"github.com/nes6502/nescpu/cartridge"
	"github.com/nes6502/nescpu/memory"
)

const (
	ramEnd       = 0x0800
	ramMirrors   = 0x2000
	ppuMirrors   = 0x4000
	expansionEnd = 0x6000
	sramEnd      = 0x8000
	prgLowEnd    = 0xC000
	// The upper PRG window runs from prgLowEnd to the top of the
	// address space, 0x10000.
)

// Bus is the NES CPU memory map. The zero value is not usable; build one
// with New.
type Bus struct {
	ram  memory.Bank
	sram memory.Bank

	// ioLatch models the forwarded-but-unimplemented PPU/APU/expansion
	// register windows as a floating databus: reads return the last
	// value written anywhere in the window, writes just record it.
	ioLatch uint8

	prgLower memory.Bank
	prgUpper memory.Bank
}

// clampPRGBank slices a mapper-0 cartridge's PRG image into the fixed
// lower and upper 16KiB CPU windows. A 16KiB cartridge yields identical
// slices, mirroring the single bank into both windows as real NROM
// hardware wires it.
func clampPRGBank(prg []uint8, bankSize int) (lower, upper []uint8) {
	lower = prg[:bankSize]
	upper = prg[len(prg)-bankSize:]
	return
}

// New builds a Bus from a parsed cartridge, always wiring it as mapper 0
// (NROM). It does not check cart.Mapper itself; cartridge.Parse already
// rejects every other mapper.
func New(cart *cartridge.Cartridge) (*Bus, error) {
	ram, err := memory.NewRAMBank(ramEnd, nil)
	if err != nil {
		return nil, err
	}
	sram, err := memory.NewRAMBank(sramEnd-expansionEnd, nil)
	if err != nil {
		return nil, err
	}

	b := &Bus{ram: ram, sram: sram}

	lower, upper := clampPRGBank(cart.PRG, prgLowEnd-sramEnd)
	b.prgLower = memory.NewROMBank(lower, nil)
	b.prgUpper = memory.NewROMBank(upper, nil)

	return b, nil
}

// Read8 implements memory.Bus.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr < ramMirrors:
		return b.ram.Read(addr % ramEnd)
	case addr < ppuMirrors:
		// PPU register window 0x2000-0x2008, mirrored every 8 bytes
		// through 0x4000. Forwarded only: no PPU exists to answer.
		return b.ioLatch
	case addr < expansionEnd:
		// APU/IO (0x4000-0x4020) and expansion ROM (0x4020-0x6000).
		return b.ioLatch
	case addr < sramEnd:
		return b.sram.Read(addr - expansionEnd)
	case addr < prgLowEnd:
		return b.prgLower.Read(addr - sramEnd)
	default:
		return b.prgUpper.Read(addr - prgLowEnd)
	}
}

// Write8 implements memory.Bus.
func (b *Bus) Write8(addr uint16, val uint8) {
	switch {
	case addr < ramMirrors:
		b.ram.Write(addr%ramEnd, val)
	case addr < expansionEnd:
		b.ioLatch = val
	case addr < sramEnd:
		b.sram.Write(addr-expansionEnd, val)
	case addr < prgLowEnd:
		b.prgLower.Write(addr-sramEnd, val)
	default:
		b.prgUpper.Write(addr-prgLowEnd, val)
	}
}
