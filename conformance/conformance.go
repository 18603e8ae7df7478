// Package conformance loads the JSON per-opcode test vectors used by the
// community SingleStepTests/ProcessorTests corpora and replays each one
// against a cpu.Chip, asserting the resulting register, flag and memory
// state matches. Of the per-cycle read/write trace in the cycles field
// it checks only the length, against the cycles the instruction billed;
// the addresses, values and modes of the individual cycles are not
// compared (sub-instruction bus timing is out of scope).
package conformance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nes6502/nescpu/cpu"
	"github.com/nes6502/nescpu/memory"
)

// RAMEntry is one address/value pair in a State's ram list. The corpus
// encodes these as a 2-element JSON array ([address, value]) rather
// than an object, so RAMEntry implements json.Unmarshaler itself.
type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (e *RAMEntry) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("conformance: decoding RAM entry %s: %w", data, err)
	}
	e.Address = uint16(pair[0])
	e.Value = uint8(pair[1])
	return nil
}

// State is the register/memory snapshot recorded before and after the
// instruction under test.
type State struct {
	PC  uint16     `json:"pc"`
	SP  uint8      `json:"s"`
	A   uint8      `json:"a"`
	X   uint8      `json:"x"`
	Y   uint8      `json:"y"`
	P   uint8      `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

// CycleMode tags a recorded bus cycle as a read or a write.
type CycleMode string

const (
	CycleRead  CycleMode = "read"
	CycleWrite CycleMode = "write"
)

// Cycle is one entry of a TestCase's recorded bus-cycle trace. Run only
// counts these entries to get the expected cycle cost; the fields of
// each entry are parsed for callers that want them but not compared.
type Cycle struct {
	Address uint16    `json:"address"`
	Value   uint8     `json:"value"`
	Mode    CycleMode `json:"mode"`
}

// TestCase is one opcode scenario: a named before/after register and RAM
// snapshot plus its bus-cycle trace.
type TestCase struct {
	Name    string  `json:"name"`
	Initial State   `json:"initial"`
	Final   State   `json:"final"`
	Cycles  []Cycle `json:"cycles"`
}

// LoadFile parses one vector file (a JSON array of TestCase) from path.
func LoadFile(path string) ([]TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: opening %s: %w", path, err)
	}
	defer f.Close()

	var cases []TestCase
	if err := json.NewDecoder(f).Decode(&cases); err != nil {
		return nil, fmt.Errorf("conformance: decoding %s: %w", path, err)
	}
	return cases, nil
}

// LoadDir globs every *.json file in dir and loads it via LoadFile,
// returning the combined set of cases keyed by source file name.
func LoadDir(dir string) (map[string][]TestCase, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("conformance: globbing %s: %w", dir, err)
	}
	out := make(map[string][]TestCase, len(matches))
	for _, m := range matches {
		cases, err := LoadFile(m)
		if err != nil {
			return nil, err
		}
		out[filepath.Base(m)] = cases
	}
	return out, nil
}

// Mismatch describes a single field that didn't match after replaying a
// TestCase.
type Mismatch struct {
	Field string
	Want  uint64
	Got   uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %#x, got %#x", m.Field, m.Want, m.Got)
}

// Run replays one TestCase against a fresh cpu.Chip and memory.FlatRAM,
// seeded from tc.Initial, and returns every field that disagrees with
// tc.Final after a single Step, including the cycle count against
// len(tc.Cycles). An empty result means the vector passed.
func Run(tc TestCase) []Mismatch {
	c := cpu.New()
	bus := memory.NewFlatRAM()

	c.PC = tc.Initial.PC
	c.SP = tc.Initial.SP
	c.A = tc.Initial.A
	c.X = tc.Initial.X
	c.Y = tc.Initial.Y
	c.P = tc.Initial.P
	for _, e := range tc.Initial.RAM {
		bus.Write8(e.Address, e.Value)
	}

	startCycles := c.Cycles
	c.Step(bus)

	var mismatches []Mismatch
	compare := func(field string, want, got uint8) {
		if want != got {
			mismatches = append(mismatches, Mismatch{Field: field, Want: uint64(want), Got: uint64(got)})
		}
	}
	compare("A", tc.Final.A, c.A)
	compare("X", tc.Final.X, c.X)
	compare("Y", tc.Final.Y, c.Y)
	compare("SP", tc.Final.SP, c.SP)
	compare("P", tc.Final.P, c.P)
	if tc.Final.PC != c.PC {
		mismatches = append(mismatches, Mismatch{Field: "PC", Want: uint64(tc.Final.PC), Got: uint64(c.PC)})
	}
	for _, e := range tc.Final.RAM {
		compare(fmt.Sprintf("RAM[%#04x]", e.Address), e.Value, bus.Read8(e.Address))
	}
	if wantCycles, gotCycles := uint64(len(tc.Cycles)), c.Cycles-startCycles; wantCycles != gotCycles {
		mismatches = append(mismatches, Mismatch{Field: "Cycles", Want: wantCycles, Got: gotCycles})
	}
	return mismatches
}
