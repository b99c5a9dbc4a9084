// Package mos6502emu is the public facade over the mos6502 core: a single
// Emulator type that owns a CPU and a flat 64KB RAM bus, and exposes the
// clock-driven operations a host (a CLI demo, a conformance runner, a
// future system emulator) needs without reaching into the core package's
// internals.
package mos6502emu

import (
	"github.com/go6502core/mos6502emu/mos6502"
	"github.com/pkg/errors"
)

// Emulator wires a CPU to a dedicated RAM bus and exposes the sequencing
// operations a host needs to drive it.
type Emulator struct {
	cpu *mos6502.CPU
	ram *mos6502.RAM
}

// New returns an Emulator with a zeroed 64KB bus. The CPU is left
// unreset; call Reset or LoadProgram before running instructions.
func New() *Emulator {
	return &Emulator{
		cpu: mos6502.NewCPU(),
		ram: mos6502.NewRAM(),
	}
}

// Reset puts the CPU through the power-on/reset sequence, loading PC from
// the reset vector at 0xFFFC.
func (e *Emulator) Reset() {
	e.cpu.Reset(e.ram)
}

// Clock advances the emulator by exactly one master cycle.
func (e *Emulator) Clock() {
	e.cpu.Clock(e.ram)
}

// StepInstruction finishes any instruction or interrupt service still in
// progress, then runs exactly one more (instruction or interrupt service)
// to completion.
func (e *Emulator) StepInstruction() {
	e.cpu.StepInstruction(e.ram)
}

// RunCycles calls Clock exactly n times.
func (e *Emulator) RunCycles(n uint32) {
	e.cpu.RunCycles(e.ram, n)
}

// IRQ requests a maskable interrupt, serviced at the next instruction
// boundary if the I flag is clear.
func (e *Emulator) IRQ() {
	e.cpu.RequestIRQ()
}

// NMI requests a non-maskable interrupt, serviced unconditionally at the
// next instruction boundary.
func (e *Emulator) NMI() {
	e.cpu.RequestNMI()
}

// LoadProgram copies program into RAM starting at offset, points the
// reset vector at offset, and resets the CPU so PC begins execution
// there. It returns ErrOutOfRange, wrapped with the attempted bounds, if
// the program does not fit in the 64KB address space.
func (e *Emulator) LoadProgram(program []byte, offset uint16) error {
	end := int(offset) + len(program)
	if end > 0x10000 {
		return errors.Wrapf(mos6502.ErrOutOfRange, "load program: offset=0x%04X len=%d end=0x%X", offset, len(program), end)
	}

	for i, b := range program {
		e.ram.Write(offset+uint16(i), b)
	}

	e.ram.Write(0xFFFC, byte(offset))
	e.ram.Write(0xFFFD, byte(offset>>8))
	e.Reset()

	return nil
}

// GetRegisters returns the six architectural registers.
func (e *Emulator) GetRegisters() (a, x, y, sp byte, pc uint16, p byte) {
	return e.cpu.GetRegisters()
}

// SetRegisters writes all six registers directly, bypassing Reset. Used
// by conformance harnesses to prime an initial state.
func (e *Emulator) SetRegisters(a, x, y, sp byte, pc uint16, p byte) {
	e.cpu.SetRegisters(a, x, y, sp, pc, p)
}

// GetCPUState returns the CPU's internal fetch/decode latches.
func (e *Emulator) GetCPUState() (fetched byte, addrAbs, addrRel uint16, opcode, cycles byte) {
	return e.cpu.GetState()
}

// ForceCyclesZero zeroes the pending cycle countdown, guaranteeing the
// next Clock call starts a fresh instruction fetch. Test-only.
func (e *Emulator) ForceCyclesZero() {
	e.cpu.ForceCyclesZero()
}

// GetRAM returns a copy of RAM[start:start+length), clamped to the 64KB
// address space. The returned slice never aliases live memory.
func (e *Emulator) GetRAM(start uint16, length int) []byte {
	return e.ram.Copy(start, length)
}

// WriteRAM writes a single byte directly to the bus, bypassing the CPU.
// Used by hosts and tests to poke memory before a run.
func (e *Emulator) WriteRAM(addr uint16, data byte) {
	e.ram.Write(addr, data)
}

// ReadRAM reads a single byte directly from the bus, bypassing the CPU.
func (e *Emulator) ReadRAM(addr uint16) byte {
	return e.ram.Read(addr)
}

// Disassemble renders the instructions in [start, end] as a sequence of
// address-ordered lines. See mos6502.Disassemble for line format.
func (e *Emulator) Disassemble(start, end uint16) []mos6502.DisassembledLine {
	return mos6502.Disassemble(e.ram, start, end)
}
