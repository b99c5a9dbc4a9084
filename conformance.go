package mos6502emu

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ramPatch is one (address, value) pair as the single-step vector format
// encodes RAM contents. The cycle-by-cycle bus log uses ramCycleEntry.
type ramPatch [2]int

// vectorState is one side (initial or final) of a single-step test case.
type vectorState struct {
	PC  uint16     `json:"pc"`
	S   byte       `json:"s"`
	A   byte       `json:"a"`
	X   byte       `json:"x"`
	Y   byte       `json:"y"`
	P   byte       `json:"p"`
	RAM []ramPatch `json:"ram"`
}

// vectorCase is a single opcode/state fixture in the Harte/SingleStepTests
// JSON shape: one initial state, one expected final state, and the bus
// cycle log (address, value, kind) the reference implementation recorded.
type vectorCase struct {
	Name    string          `json:"name"`
	Initial vectorState     `json:"initial"`
	Final   vectorState     `json:"final"`
	Cycles  []ramCycleEntry `json:"cycles"`
}

type ramCycleEntry struct {
	Addr uint16
	Val  byte
	Kind string
}

// UnmarshalJSON accepts the vector format's mixed-type [addr, val, kind]
// triples.
func (c *ramCycleEntry) UnmarshalJSON(data []byte) error {
	var raw [3]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if addr, ok := raw[0].(float64); ok {
		c.Addr = uint16(addr)
	}
	if val, ok := raw[1].(float64); ok {
		c.Val = byte(val)
	}
	if kind, ok := raw[2].(string); ok {
		c.Kind = kind
	}
	return nil
}

// LoadVectorFile parses a single-step vector JSON file.
func LoadVectorFile(path string) ([]vectorCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load vector file %s", path)
	}

	var cases []vectorCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, errors.Wrapf(err, "parse vector file %s", path)
	}
	return cases, nil
}

// VectorMismatch describes one field that disagreed with the expected
// final state of a single-step vector case.
type VectorMismatch struct {
	Case  string
	Field string
	Got   uint64
	Want  uint64
}

// RunVector primes emu from c.Initial, executes exactly one instruction,
// and reports every field that disagrees with c.Final. An empty result
// means the vector passed.
func RunVector(emu *Emulator, c vectorCase) []VectorMismatch {
	for addr := 0; addr < 0x10000; addr++ {
		emu.WriteRAM(uint16(addr), 0)
	}
	for _, patch := range c.Initial.RAM {
		emu.WriteRAM(uint16(patch[0]), byte(patch[1]))
	}
	emu.SetRegisters(c.Initial.A, c.Initial.X, c.Initial.Y, c.Initial.S, c.Initial.PC, c.Initial.P)
	emu.ForceCyclesZero()

	before := emu.cpu.TotalCycles
	emu.StepInstruction()
	cyclesTaken := emu.cpu.TotalCycles - before

	var mismatches []VectorMismatch
	a, x, y, sp, pc, p := emu.GetRegisters()

	check := func(field string, got, want uint64) {
		if got != want {
			mismatches = append(mismatches, VectorMismatch{c.Name, field, got, want})
		}
	}
	check("a", uint64(a), uint64(c.Final.A))
	check("x", uint64(x), uint64(c.Final.X))
	check("y", uint64(y), uint64(c.Final.Y))
	check("sp", uint64(sp), uint64(c.Final.S))
	check("pc", uint64(pc), uint64(c.Final.PC))
	check("p", uint64(p), uint64(c.Final.P))
	check("cycles", uint64(cyclesTaken), uint64(len(c.Cycles)))

	for _, patch := range c.Final.RAM {
		addr := uint16(patch[0])
		want := byte(patch[1])
		if got := emu.ReadRAM(addr); got != want {
			mismatches = append(mismatches, VectorMismatch{c.Name, "ram", uint64(got), uint64(want)})
		}
	}

	return mismatches
}
