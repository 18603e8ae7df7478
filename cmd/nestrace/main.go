// nestrace is an interactive terminal stepper for the CPU: load an iNES
// ROM and single-step it one instruction at a time, watching registers,
// flags and a RAM page table update. Raw binaries without an iNES
// header are not accepted.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/nes6502/nescpu/cartridge"
	"github.com/nes6502/nescpu/cpu"
	"github.com/nes6502/nescpu/disassemble"
	"github.com/nes6502/nescpu/memory"
	"github.com/nes6502/nescpu/nesbus"
)

func main() {
	app := &cli.App{
		Name:  "nestrace",
		Usage: "interactively single-step an iNES ROM",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "start",
				Usage: "PC to start at (defaults to the reset vector)",
				Value: -1,
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
		return cli.Exit("usage: nestrace [-start PC] <rom.nes>", 86)
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

	p := tea.NewProgram(newModel(bus, pc))
	m, err := p.Run()
	if err != nil {
		return err
	}
	if x := m.(model); x.err != nil {
		fmt.Println("halted:", x.err)
	}
	return nil
}

type model struct {
	chip   *cpu.Chip
	bus    memory.Bus
	prevPC uint16
	err    error
}

func newModel(bus memory.Bus, pc uint16) model {
	c := cpu.New()
	c.PC = pc
	return model{chip: c, bus: bus}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			if m.chip.Halted {
				return m, nil
			}
			m.prevPC = m.chip.PC
			func() {
				defer func() {
					if r := recover(); r != nil {
						m.err = fmt.Errorf("%v", r)
					}
				}()
				m.chip.Step(m.bus)
			}()
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of RAM, bracketing the live PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.bus.Read8(addr)
		if addr == m.chip.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01X  ", b)
	}
	base := m.chip.PC &^ 0x0F
	rows := []string{header}
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	flagBits := []struct {
		name string
		on   bool
	}{
		{"N", m.chip.P&cpu.FlagNegative != 0},
		{"V", m.chip.P&cpu.FlagOverflow != 0},
		{"_", m.chip.P&cpu.FlagUnused != 0},
		{"B", m.chip.P&cpu.FlagBreak != 0},
		{"D", m.chip.P&cpu.FlagDecimalMode != 0},
		{"I", m.chip.P&cpu.FlagInterruptDisable != 0},
		{"Z", m.chip.P&cpu.FlagZero != 0},
		{"C", m.chip.P&cpu.FlagCarry != 0},
	}
	var top, bottom strings.Builder
	for _, f := range flagBits {
		fmt.Fprintf(&top, "%s ", f.name)
		if f.on {
			bottom.WriteString("/ ")
		} else {
			bottom.WriteString("  ")
		}
	}
	halted := ""
	if m.chip.Halted {
		halted = "\n(halted on KIL/JAM)"
	}
	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X  X: %02X  Y: %02X  SP: %02X
cycles: %d
%s
%s%s`,
		m.chip.PC, m.prevPC,
		m.chip.A, m.chip.X, m.chip.Y, m.chip.SP,
		m.chip.Cycles,
		top.String(), bottom.String(), halted)
}

func (m model) View() string {
	text, _ := disassemble.Step(m.chip.PC, m.bus)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		"next: "+text,
		"",
		spew.Sdump(m.chip),
	)
}
