// Command mos6502demo embeds the mos6502emu facade the way an external
// host would: load a raw binary, run it, and optionally disassemble,
// trace, or drive it interactively or from a Lua script.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go6502core/mos6502emu"

	lua "github.com/yuin/gopher-lua"
	"golang.org/x/term"
)

var (
	flagLoad        string
	flagOffset      uint
	flagCycles      uint
	flagDisasm      bool
	flagTrace       bool
	flagScript      string
	flagInteractive bool
)

func main() {
	parseFlags()

	emu := mos6502emu.New()

	if flagLoad != "" {
		program, err := os.ReadFile(flagLoad)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mos6502demo:", err)
			os.Exit(1)
		}
		// LoadProgram points the reset vector at flagOffset and resets.
		if err := emu.LoadProgram(program, uint16(flagOffset)); err != nil {
			fmt.Fprintln(os.Stderr, "mos6502demo:", err)
			os.Exit(1)
		}
	} else {
		emu.Reset()
	}

	if flagDisasm {
		runDisasm(emu)
		return
	}

	if flagScript != "" {
		if err := runScript(emu, flagScript); err != nil {
			fmt.Fprintln(os.Stderr, "mos6502demo:", err)
			os.Exit(1)
		}
		return
	}

	if flagInteractive {
		if err := runInteractive(emu); err != nil {
			fmt.Fprintln(os.Stderr, "mos6502demo:", err)
			os.Exit(1)
		}
		return
	}

	runCycles(emu, flagCycles, flagTrace)
}

func parseFlags() {
	flag.StringVar(&flagLoad, "load", "", "path to a raw binary to load")
	flag.UintVar(&flagOffset, "offset", 0x8000, "address to load the binary at")
	flag.UintVar(&flagCycles, "cycles", 1000, "number of master cycles to run")
	flag.BoolVar(&flagDisasm, "disasm", false, "disassemble from -offset through -offset+0x100 instead of running")
	flag.BoolVar(&flagTrace, "trace", false, "print registers after every instruction")
	flag.StringVar(&flagScript, "script", "", "path to a Lua script driving the emulator via its host bridge")
	flag.BoolVar(&flagInteractive, "interactive", false, "single-keypress instruction stepper")
	flag.Parse()
}

func runDisasm(emu *mos6502emu.Emulator) {
	lines := emu.Disassemble(uint16(flagOffset), uint16(flagOffset)+0x0100)
	for _, l := range lines {
		fmt.Printf("$%04X: %s\n", l.Addr, l.Text)
	}
}

func runCycles(emu *mos6502emu.Emulator, cycles uint, trace bool) {
	if !trace {
		emu.RunCycles(uint32(cycles))
		printRegisters(emu)
		return
	}

	for spent := uint(0); spent < cycles; spent++ {
		emu.Clock()
		if _, _, _, _, remaining := emu.GetCPUState(); remaining == 0 {
			printRegisters(emu)
		}
	}
}

func printRegisters(emu *mos6502emu.Emulator) {
	a, x, y, sp, pc, p := emu.GetRegisters()
	fmt.Printf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%08b\n", a, x, y, sp, pc, p)
}

// runInteractive drives the facade one instruction per keypress,
// demonstrating the UI animation loop caller pattern without a real UI.
func runInteractive(emu *mos6502emu.Emulator) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("mos6502demo: -interactive requires a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	fmt.Println("press space to step, q to quit\r")
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return err
		}
		switch buf[0] {
		case 'q', 'Q', 0x03:
			return nil
		case ' ':
			emu.StepInstruction()
			a, x, y, sp, pc, p := emu.GetRegisters()
			fmt.Printf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%08b\r\n", a, x, y, sp, pc, p)
		}
	}
}

// runScript loads script and registers a bridge table exposing reset,
// clock, step, load_program, and get_registers back into the facade.
func runScript(emu *mos6502emu.Emulator, script string) error {
	L := lua.NewState()
	defer L.Close()

	bridge := L.NewTable()
	L.SetField(bridge, "reset", L.NewFunction(func(L *lua.LState) int {
		emu.Reset()
		return 0
	}))
	L.SetField(bridge, "clock", L.NewFunction(func(L *lua.LState) int {
		emu.Clock()
		return 0
	}))
	L.SetField(bridge, "step", L.NewFunction(func(L *lua.LState) int {
		emu.StepInstruction()
		return 0
	}))
	L.SetField(bridge, "load_program", L.NewFunction(func(L *lua.LState) int {
		path := L.CheckString(1)
		offset := uint16(L.CheckNumber(2))
		program, err := os.ReadFile(path)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		if err := emu.LoadProgram(program, offset); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))
	L.SetField(bridge, "get_registers", L.NewFunction(func(L *lua.LState) int {
		a, x, y, sp, pc, p := emu.GetRegisters()
		L.Push(lua.LNumber(a))
		L.Push(lua.LNumber(x))
		L.Push(lua.LNumber(y))
		L.Push(lua.LNumber(sp))
		L.Push(lua.LNumber(pc))
		L.Push(lua.LNumber(p))
		return 6
	}))
	L.SetGlobal("mos6502", bridge)

	return L.DoFile(script)
}
