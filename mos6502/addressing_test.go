package mos6502

import "testing"

func TestAmZPX_wrapsWithinZeroPage(t *testing.T) {
	ram := NewRAM()
	cpu := NewCPU()
	cpu.X = 0xFF
	ram.Write(0x00, 0x80)

	extra := amZPX(cpu, ram)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{cpu.AddrAbs, uint16(0x7F)}, // 0x80+0xFF wraps to 0x7F, stays in zero page
		{extra, byte(0)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestAmABX_reportsPageCross(t *testing.T) {
	ram := NewRAM()
	cpu := NewCPU()
	cpu.X = 0x01
	ram.Write(0x00, 0xFF)
	ram.Write(0x01, 0x20) // base = 0x20FF

	extra := amABX(cpu, ram)

	if cpu.AddrAbs != 0x2100 {
		t.Errorf("got AddrAbs %04X, want 0x2100", cpu.AddrAbs)
	}
	if extra != 1 {
		t.Errorf("got extra %d, want 1 for a page-crossing index", extra)
	}
}

func TestAmABX_noPageCross(t *testing.T) {
	ram := NewRAM()
	cpu := NewCPU()
	cpu.X = 0x01
	ram.Write(0x00, 0x10)
	ram.Write(0x01, 0x20) // base = 0x2010

	extra := amABX(cpu, ram)

	if cpu.AddrAbs != 0x2011 {
		t.Errorf("got AddrAbs %04X, want 0x2011", cpu.AddrAbs)
	}
	if extra != 0 {
		t.Errorf("got extra %d, want 0", extra)
	}
}

// TestAmIND_pageWrapBug reproduces the NMOS 6502's indirect-JMP bug: when
// the pointer low byte is 0xFF, the high byte wraps to the start of the
// same page instead of crossing into the next one.
func TestAmIND_pageWrapBug(t *testing.T) {
	ram := NewRAM()
	cpu := NewCPU()

	ram.Write(0x00, 0xFF)
	ram.Write(0x01, 0x30) // pointer = 0x30FF
	ram.Write(0x30FF, 0x01)
	ram.Write(0x3000, 0x80) // bug: high byte read from 0x3000, not 0x3100
	ram.Write(0x3100, 0xFF) // if the bug were absent, this would be read instead

	amIND(cpu, ram)

	if cpu.AddrAbs != 0x8001 {
		t.Errorf("got AddrAbs %04X, want 0x8001 (page-wrap bug reproduced)", cpu.AddrAbs)
	}
}

func TestAmIND_noWrap(t *testing.T) {
	ram := NewRAM()
	cpu := NewCPU()

	ram.Write(0x00, 0x00)
	ram.Write(0x01, 0x30) // pointer = 0x3000
	ram.Write(0x3000, 0x01)
	ram.Write(0x3001, 0x80)

	amIND(cpu, ram)

	if cpu.AddrAbs != 0x8001 {
		t.Errorf("got AddrAbs %04X, want 0x8001", cpu.AddrAbs)
	}
}

func TestAmIZX(t *testing.T) {
	ram := NewRAM()
	cpu := NewCPU()
	cpu.X = 0x04

	ram.Write(0x00, 0x20) // operand
	ram.Write(0x24, 0x74) // 0x20+0x04 = 0x24
	ram.Write(0x25, 0x20)

	amIZX(cpu, ram)

	if cpu.AddrAbs != 0x2074 {
		t.Errorf("got AddrAbs %04X, want 0x2074", cpu.AddrAbs)
	}
}

func TestAmIZY_pageCross(t *testing.T) {
	ram := NewRAM()
	cpu := NewCPU()
	cpu.Y = 0x01

	ram.Write(0x00, 0x10)   // operand: zero page pointer at 0x10
	ram.Write(0x10, 0xFF)   // base lo
	ram.Write(0x11, 0x20)   // base hi -> base = 0x20FF

	extra := amIZY(cpu, ram)

	if cpu.AddrAbs != 0x2100 {
		t.Errorf("got AddrAbs %04X, want 0x2100", cpu.AddrAbs)
	}
	if extra != 1 {
		t.Errorf("got extra %d, want 1", extra)
	}
}

func TestFetch_skipsBusReadWhenImplied(t *testing.T) {
	ram := NewRAM()
	cpu := NewCPU()
	cpu.A = 0x42
	amIMP(cpu, ram)
	cpu.fetch(ram)

	if cpu.Fetched != 0x42 {
		t.Errorf("got Fetched %02X, want 0x42 (accumulator, not a bus read)", cpu.Fetched)
	}
}
