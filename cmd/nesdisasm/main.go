// nesdisasm loads an iNES ROM and disassembles its PRG ROM to stdout,
// starting at the reset vector unless -start overrides it.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nes6502/nescpu/cartridge"
	"github.com/nes6502/nescpu/disassemble"
	"github.com/nes6502/nescpu/memory"
	"github.com/nes6502/nescpu/nesbus"
)

func main() {
	app := &cli.App{
		Name:    "nesdisasm",
		Usage:   "disassemble the PRG ROM of an iNES cartridge",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "start",
				Usage: "PC to start disassembling at (defaults to the reset vector)",
				Value: -1,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of instructions to disassemble, 0 means until the PRG window is exhausted",
				Value: 0,
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: nesdisasm [flags] <rom.nes>", 86)
	}
	raw, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading rom: %v", err), 1)
	}
	cart, err := cartridge.Parse(raw)
	if err != nil {
		return cli.Exit(fmt.Sprintf("parsing rom: %v", err), 1)
	}
	bus, err := nesbus.New(cart)
	if err != nil {
		return cli.Exit(fmt.Sprintf("mapping rom: %v", err), 1)
	}

	pc := uint16(c.Int("start"))
	if c.Int("start") < 0 {
		pc = memory.Read16(bus, 0xFFFC)
	}
	count := c.Int("count")

	fmt.Printf("mapper %d, PRG %d bytes, CHR-RAM=%v, mirroring=%v\n",
		cart.Mapper, len(cart.PRG), cart.CHRIsRAM(), cart.Mirroring)
	fmt.Printf("starting at %.4X\n", pc)

	decoded := 0
	for {
		if count > 0 && decoded >= count {
			return nil
		}
		text, advance := disassemble.Step(pc, bus)
		fmt.Println(text)
		pc += uint16(advance)
		decoded++
		if count == 0 && pc == 0 {
			// Wrapped around the 64KiB address space; stop rather than loop forever.
			return nil
		}
	}
}
