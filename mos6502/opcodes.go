package mos6502

// instruction binds one opcode byte to its diagnostic mnemonic, its
// addressing mode, the operation it executes, and its base cycle count
// before any addressing/operation extra-cycle combination is applied.
type instruction struct {
	Mnemonic string
	Mode     AddressingMode
	Mode_    addrModeFunc
	Op       opFunc
	Cycles   byte
}

// opcodeTable is the 256-entry static dispatch table, one row per opcode.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
var opcodeTable [256]instruction

type opcodeRow struct {
	opcode   byte
	mnemonic string
	mode     AddressingMode
	modeFn   addrModeFunc
	op       opFunc
	cycles   byte
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = instruction{"XXX", IMP, amIMP, opXXX, 2}
	}

	for _, row := range documentedOpcodes {
		opcodeTable[row.opcode] = instruction{row.mnemonic, row.mode, row.modeFn, row.op, row.cycles}
	}
}

var documentedOpcodes = []opcodeRow{
	{0x00, "BRK", IMP, amIMP, opBRK, 7},
	{0x01, "ORA", IZX, amIZX, opORA, 6},
	{0x05, "ORA", ZP0, amZP0, opORA, 3},
	{0x06, "ASL", ZP0, amZP0, opASL, 5},
	{0x08, "PHP", IMP, amIMP, opPHP, 3},
	{0x09, "ORA", IMM, amIMM, opORA, 2},
	{0x0A, "ASL", IMP, amIMP, opASL, 2},
	{0x0D, "ORA", ABS, amABS, opORA, 4},
	{0x0E, "ASL", ABS, amABS, opASL, 6},

	{0x10, "BPL", REL, amREL, opBPL, 2},
	{0x11, "ORA", IZY, amIZY, opORA, 5},
	{0x15, "ORA", ZPX, amZPX, opORA, 4},
	{0x16, "ASL", ZPX, amZPX, opASL, 6},
	{0x18, "CLC", IMP, amIMP, opCLC, 2},
	{0x19, "ORA", ABY, amABY, opORA, 4},
	{0x1D, "ORA", ABX, amABX, opORA, 4},
	{0x1E, "ASL", ABX, amABX, opASL, 7},

	{0x20, "JSR", ABS, amABS, opJSR, 6},
	{0x21, "AND", IZX, amIZX, opAND, 6},
	{0x24, "BIT", ZP0, amZP0, opBIT, 3},
	{0x25, "AND", ZP0, amZP0, opAND, 3},
	{0x26, "ROL", ZP0, amZP0, opROL, 5},
	{0x28, "PLP", IMP, amIMP, opPLP, 4},
	{0x29, "AND", IMM, amIMM, opAND, 2},
	{0x2A, "ROL", IMP, amIMP, opROL, 2},
	{0x2C, "BIT", ABS, amABS, opBIT, 4},
	{0x2D, "AND", ABS, amABS, opAND, 4},
	{0x2E, "ROL", ABS, amABS, opROL, 6},

	{0x30, "BMI", REL, amREL, opBMI, 2},
	{0x31, "AND", IZY, amIZY, opAND, 5},
	{0x35, "AND", ZPX, amZPX, opAND, 4},
	{0x36, "ROL", ZPX, amZPX, opROL, 6},
	{0x38, "SEC", IMP, amIMP, opSEC, 2},
	{0x39, "AND", ABY, amABY, opAND, 4},
	{0x3D, "AND", ABX, amABX, opAND, 4},
	{0x3E, "ROL", ABX, amABX, opROL, 7},

	{0x40, "RTI", IMP, amIMP, opRTI, 6},
	{0x41, "EOR", IZX, amIZX, opEOR, 6},
	{0x45, "EOR", ZP0, amZP0, opEOR, 3},
	{0x46, "LSR", ZP0, amZP0, opLSR, 5},
	{0x48, "PHA", IMP, amIMP, opPHA, 3},
	{0x49, "EOR", IMM, amIMM, opEOR, 2},
	{0x4A, "LSR", IMP, amIMP, opLSR, 2},
	{0x4C, "JMP", ABS, amABS, opJMP, 3},
	{0x4D, "EOR", ABS, amABS, opEOR, 4},
	{0x4E, "LSR", ABS, amABS, opLSR, 6},

	{0x50, "BVC", REL, amREL, opBVC, 2},
	{0x51, "EOR", IZY, amIZY, opEOR, 5},
	{0x55, "EOR", ZPX, amZPX, opEOR, 4},
	{0x56, "LSR", ZPX, amZPX, opLSR, 6},
	{0x58, "CLI", IMP, amIMP, opCLI, 2},
	{0x59, "EOR", ABY, amABY, opEOR, 4},
	{0x5D, "EOR", ABX, amABX, opEOR, 4},
	{0x5E, "LSR", ABX, amABX, opLSR, 7},

	{0x60, "RTS", IMP, amIMP, opRTS, 6},
	{0x61, "ADC", IZX, amIZX, opADC, 6},
	{0x65, "ADC", ZP0, amZP0, opADC, 3},
	{0x66, "ROR", ZP0, amZP0, opROR, 5},
	{0x68, "PLA", IMP, amIMP, opPLA, 4},
	{0x69, "ADC", IMM, amIMM, opADC, 2},
	{0x6A, "ROR", IMP, amIMP, opROR, 2},
	{0x6C, "JMP", IND, amIND, opJMP, 5},
	{0x6D, "ADC", ABS, amABS, opADC, 4},
	{0x6E, "ROR", ABS, amABS, opROR, 6},

	{0x70, "BVS", REL, amREL, opBVS, 2},
	{0x71, "ADC", IZY, amIZY, opADC, 5},
	{0x75, "ADC", ZPX, amZPX, opADC, 4},
	{0x76, "ROR", ZPX, amZPX, opROR, 6},
	{0x78, "SEI", IMP, amIMP, opSEI, 2},
	{0x79, "ADC", ABY, amABY, opADC, 4},
	{0x7D, "ADC", ABX, amABX, opADC, 4},
	{0x7E, "ROR", ABX, amABX, opROR, 7},

	{0x81, "STA", IZX, amIZX, opSTA, 6},
	{0x84, "STY", ZP0, amZP0, opSTY, 3},
	{0x85, "STA", ZP0, amZP0, opSTA, 3},
	{0x86, "STX", ZP0, amZP0, opSTX, 3},
	{0x88, "DEY", IMP, amIMP, opDEY, 2},
	{0x8A, "TXA", IMP, amIMP, opTXA, 2},
	{0x8C, "STY", ABS, amABS, opSTY, 4},
	{0x8D, "STA", ABS, amABS, opSTA, 4},
	{0x8E, "STX", ABS, amABS, opSTX, 4},

	{0x90, "BCC", REL, amREL, opBCC, 2},
	{0x91, "STA", IZY, amIZY, opSTA, 6},
	{0x94, "STY", ZPX, amZPX, opSTY, 4},
	{0x95, "STA", ZPX, amZPX, opSTA, 4},
	{0x96, "STX", ZPY, amZPY, opSTX, 4},
	{0x98, "TYA", IMP, amIMP, opTYA, 2},
	{0x99, "STA", ABY, amABY, opSTA, 5},
	{0x9A, "TXS", IMP, amIMP, opTXS, 2},
	{0x9D, "STA", ABX, amABX, opSTA, 5},

	{0xA0, "LDY", IMM, amIMM, opLDY, 2},
	{0xA1, "LDA", IZX, amIZX, opLDA, 6},
	{0xA2, "LDX", IMM, amIMM, opLDX, 2},
	{0xA4, "LDY", ZP0, amZP0, opLDY, 3},
	{0xA5, "LDA", ZP0, amZP0, opLDA, 3},
	{0xA6, "LDX", ZP0, amZP0, opLDX, 3},
	{0xA8, "TAY", IMP, amIMP, opTAY, 2},
	{0xA9, "LDA", IMM, amIMM, opLDA, 2},
	{0xAA, "TAX", IMP, amIMP, opTAX, 2},
	{0xAC, "LDY", ABS, amABS, opLDY, 4},
	{0xAD, "LDA", ABS, amABS, opLDA, 4},
	{0xAE, "LDX", ABS, amABS, opLDX, 4},

	{0xB0, "BCS", REL, amREL, opBCS, 2},
	{0xB1, "LDA", IZY, amIZY, opLDA, 5},
	{0xB4, "LDY", ZPX, amZPX, opLDY, 4},
	{0xB5, "LDA", ZPX, amZPX, opLDA, 4},
	{0xB6, "LDX", ZPY, amZPY, opLDX, 4},
	{0xB8, "CLV", IMP, amIMP, opCLV, 2},
	{0xB9, "LDA", ABY, amABY, opLDA, 4},
	{0xBA, "TSX", IMP, amIMP, opTSX, 2},
	{0xBC, "LDY", ABX, amABX, opLDY, 4},
	{0xBD, "LDA", ABX, amABX, opLDA, 4},
	{0xBE, "LDX", ABY, amABY, opLDX, 4},

	{0xC0, "CPY", IMM, amIMM, opCPY, 2},
	{0xC1, "CMP", IZX, amIZX, opCMP, 6},
	{0xC4, "CPY", ZP0, amZP0, opCPY, 3},
	{0xC5, "CMP", ZP0, amZP0, opCMP, 3},
	{0xC6, "DEC", ZP0, amZP0, opDEC, 5},
	{0xC8, "INY", IMP, amIMP, opINY, 2},
	{0xC9, "CMP", IMM, amIMM, opCMP, 2},
	{0xCA, "DEX", IMP, amIMP, opDEX, 2},
	{0xCC, "CPY", ABS, amABS, opCPY, 4},
	{0xCD, "CMP", ABS, amABS, opCMP, 4},
	{0xCE, "DEC", ABS, amABS, opDEC, 6},

	{0xD0, "BNE", REL, amREL, opBNE, 2},
	{0xD1, "CMP", IZY, amIZY, opCMP, 5},
	{0xD5, "CMP", ZPX, amZPX, opCMP, 4},
	{0xD6, "DEC", ZPX, amZPX, opDEC, 6},
	{0xD8, "CLD", IMP, amIMP, opCLD, 2},
	{0xD9, "CMP", ABY, amABY, opCMP, 4},
	{0xDD, "CMP", ABX, amABX, opCMP, 4},
	{0xDE, "DEC", ABX, amABX, opDEC, 7},

	{0xE0, "CPX", IMM, amIMM, opCPX, 2},
	{0xE1, "SBC", IZX, amIZX, opSBC, 6},
	{0xE4, "CPX", ZP0, amZP0, opCPX, 3},
	{0xE5, "SBC", ZP0, amZP0, opSBC, 3},
	{0xE6, "INC", ZP0, amZP0, opINC, 5},
	{0xE8, "INX", IMP, amIMP, opINX, 2},
	{0xE9, "SBC", IMM, amIMM, opSBC, 2},
	{0xEA, "NOP", IMP, amIMP, opNOP, 2},
	{0xEC, "CPX", ABS, amABS, opCPX, 4},
	{0xED, "SBC", ABS, amABS, opSBC, 4},
	{0xEE, "INC", ABS, amABS, opINC, 6},

	{0xF0, "BEQ", REL, amREL, opBEQ, 2},
	{0xF1, "SBC", IZY, amIZY, opSBC, 5},
	{0xF5, "SBC", ZPX, amZPX, opSBC, 4},
	{0xF6, "INC", ZPX, amZPX, opINC, 6},
	{0xF8, "SED", IMP, amIMP, opSED, 2},
	{0xF9, "SBC", ABY, amABY, opSBC, 4},
	{0xFD, "SBC", ABX, amABX, opSBC, 4},
	{0xFE, "INC", ABX, amABX, opINC, 7},
}
