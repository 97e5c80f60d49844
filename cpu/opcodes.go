package cpu

// opcode is a single decoded table entry: the addressing mode it uses, its
// base cycle cost, whether a page-crossing access costs one extra cycle,
// and the handler that performs it. Multiple opcode bytes may share a
// handler, differing only in addressing mode and cost — the table, not the
// handler, knows the difference.
type opcode struct {
	name           string
	mode           AddrMode
	cycles         byte
	pageCrossExtra bool
	valid          bool
	fn             func(c *Cpu) byte
}

// opcodeTable is a flat, fully decoded 256-entry dispatch table, built once
// at init instead of re-decoded on every fetch. Entries left at their zero
// value (valid: false) are the 105 byte values with no documented
// instruction; Step reports these as ErrIllegalOpcode.
var opcodeTable = [256]opcode{
	0x69: {"ADC", ModeImmediate, 2, false, true, (*Cpu).opADC},
	0x65: {"ADC", ModeZeroPage, 3, false, true, (*Cpu).opADC},
	0x75: {"ADC", ModeZeroPageX, 4, false, true, (*Cpu).opADC},
	0x6D: {"ADC", ModeAbsolute, 4, false, true, (*Cpu).opADC},
	0x7D: {"ADC", ModeAbsoluteX, 4, true, true, (*Cpu).opADC},
	0x79: {"ADC", ModeAbsoluteY, 4, true, true, (*Cpu).opADC},
	0x61: {"ADC", ModeIndirectX, 6, false, true, (*Cpu).opADC},
	0x71: {"ADC", ModeIndirectY, 5, true, true, (*Cpu).opADC},

	0x29: {"AND", ModeImmediate, 2, false, true, (*Cpu).opAND},
	0x25: {"AND", ModeZeroPage, 3, false, true, (*Cpu).opAND},
	0x35: {"AND", ModeZeroPageX, 4, false, true, (*Cpu).opAND},
	0x2D: {"AND", ModeAbsolute, 4, false, true, (*Cpu).opAND},
	0x3D: {"AND", ModeAbsoluteX, 4, true, true, (*Cpu).opAND},
	0x39: {"AND", ModeAbsoluteY, 4, true, true, (*Cpu).opAND},
	0x21: {"AND", ModeIndirectX, 6, false, true, (*Cpu).opAND},
	0x31: {"AND", ModeIndirectY, 5, true, true, (*Cpu).opAND},

	0x0A: {"ASL", ModeAccumulator, 2, false, true, (*Cpu).opASL},
	0x06: {"ASL", ModeZeroPage, 5, false, true, (*Cpu).opASL},
	0x16: {"ASL", ModeZeroPageX, 6, false, true, (*Cpu).opASL},
	0x0E: {"ASL", ModeAbsolute, 6, false, true, (*Cpu).opASL},
	0x1E: {"ASL", ModeAbsoluteX, 7, false, true, (*Cpu).opASL},

	0x90: {"BCC", ModeRelative, 2, false, true, (*Cpu).opBCC},
	0xB0: {"BCS", ModeRelative, 2, false, true, (*Cpu).opBCS},
	0xF0: {"BEQ", ModeRelative, 2, false, true, (*Cpu).opBEQ},
	0x30: {"BMI", ModeRelative, 2, false, true, (*Cpu).opBMI},
	0xD0: {"BNE", ModeRelative, 2, false, true, (*Cpu).opBNE},
	0x10: {"BPL", ModeRelative, 2, false, true, (*Cpu).opBPL},
	0x50: {"BVC", ModeRelative, 2, false, true, (*Cpu).opBVC},
	0x70: {"BVS", ModeRelative, 2, false, true, (*Cpu).opBVS},

	0x24: {"BIT", ModeZeroPage, 3, false, true, (*Cpu).opBIT},
	0x2C: {"BIT", ModeAbsolute, 4, false, true, (*Cpu).opBIT},

	0x00: {"BRK", ModeImplied, 7, false, true, (*Cpu).opBRK},

	0x18: {"CLC", ModeImplied, 2, false, true, (*Cpu).opCLC},
	0x38: {"SEC", ModeImplied, 2, false, true, (*Cpu).opSEC},
	0x58: {"CLI", ModeImplied, 2, false, true, (*Cpu).opCLI},
	0x78: {"SEI", ModeImplied, 2, false, true, (*Cpu).opSEI},
	0xB8: {"CLV", ModeImplied, 2, false, true, (*Cpu).opCLV},
	0xD8: {"CLD", ModeImplied, 2, false, true, (*Cpu).opCLD},
	0xF8: {"SED", ModeImplied, 2, false, true, (*Cpu).opSED},

	0xC9: {"CMP", ModeImmediate, 2, false, true, (*Cpu).opCMP},
	0xC5: {"CMP", ModeZeroPage, 3, false, true, (*Cpu).opCMP},
	0xD5: {"CMP", ModeZeroPageX, 4, false, true, (*Cpu).opCMP},
	0xCD: {"CMP", ModeAbsolute, 4, false, true, (*Cpu).opCMP},
	0xDD: {"CMP", ModeAbsoluteX, 4, true, true, (*Cpu).opCMP},
	0xD9: {"CMP", ModeAbsoluteY, 4, true, true, (*Cpu).opCMP},
	0xC1: {"CMP", ModeIndirectX, 6, false, true, (*Cpu).opCMP},
	0xD1: {"CMP", ModeIndirectY, 5, true, true, (*Cpu).opCMP},

	0xE0: {"CPX", ModeImmediate, 2, false, true, (*Cpu).opCPX},
	0xE4: {"CPX", ModeZeroPage, 3, false, true, (*Cpu).opCPX},
	0xEC: {"CPX", ModeAbsolute, 4, false, true, (*Cpu).opCPX},

	0xC0: {"CPY", ModeImmediate, 2, false, true, (*Cpu).opCPY},
	0xC4: {"CPY", ModeZeroPage, 3, false, true, (*Cpu).opCPY},
	0xCC: {"CPY", ModeAbsolute, 4, false, true, (*Cpu).opCPY},

	0xC6: {"DEC", ModeZeroPage, 5, false, true, (*Cpu).opDEC},
	0xD6: {"DEC", ModeZeroPageX, 6, false, true, (*Cpu).opDEC},
	0xCE: {"DEC", ModeAbsolute, 6, false, true, (*Cpu).opDEC},
	0xDE: {"DEC", ModeAbsoluteX, 7, false, true, (*Cpu).opDEC},

	0xCA: {"DEX", ModeImplied, 2, false, true, (*Cpu).opDEX},
	0x88: {"DEY", ModeImplied, 2, false, true, (*Cpu).opDEY},

	0x49: {"EOR", ModeImmediate, 2, false, true, (*Cpu).opEOR},
	0x45: {"EOR", ModeZeroPage, 3, false, true, (*Cpu).opEOR},
	0x55: {"EOR", ModeZeroPageX, 4, false, true, (*Cpu).opEOR},
	0x4D: {"EOR", ModeAbsolute, 4, false, true, (*Cpu).opEOR},
	0x5D: {"EOR", ModeAbsoluteX, 4, true, true, (*Cpu).opEOR},
	0x59: {"EOR", ModeAbsoluteY, 4, true, true, (*Cpu).opEOR},
	0x41: {"EOR", ModeIndirectX, 6, false, true, (*Cpu).opEOR},
	0x51: {"EOR", ModeIndirectY, 5, true, true, (*Cpu).opEOR},

	0xE6: {"INC", ModeZeroPage, 5, false, true, (*Cpu).opINC},
	0xF6: {"INC", ModeZeroPageX, 6, false, true, (*Cpu).opINC},
	0xEE: {"INC", ModeAbsolute, 6, false, true, (*Cpu).opINC},
	0xFE: {"INC", ModeAbsoluteX, 7, false, true, (*Cpu).opINC},

	0xE8: {"INX", ModeImplied, 2, false, true, (*Cpu).opINX},
	0xC8: {"INY", ModeImplied, 2, false, true, (*Cpu).opINY},

	0x4C: {"JMP", ModeAbsolute, 3, false, true, (*Cpu).opJMP},
	0x6C: {"JMP", ModeIndirect, 5, false, true, (*Cpu).opJMP},

	0x20: {"JSR", ModeAbsolute, 6, false, true, (*Cpu).opJSR},

	0xA9: {"LDA", ModeImmediate, 2, false, true, (*Cpu).opLDA},
	0xA5: {"LDA", ModeZeroPage, 3, false, true, (*Cpu).opLDA},
	0xB5: {"LDA", ModeZeroPageX, 4, false, true, (*Cpu).opLDA},
	0xAD: {"LDA", ModeAbsolute, 4, false, true, (*Cpu).opLDA},
	0xBD: {"LDA", ModeAbsoluteX, 4, true, true, (*Cpu).opLDA},
	0xB9: {"LDA", ModeAbsoluteY, 4, true, true, (*Cpu).opLDA},
	0xA1: {"LDA", ModeIndirectX, 6, false, true, (*Cpu).opLDA},
	0xB1: {"LDA", ModeIndirectY, 5, true, true, (*Cpu).opLDA},

	0xA2: {"LDX", ModeImmediate, 2, false, true, (*Cpu).opLDX},
	0xA6: {"LDX", ModeZeroPage, 3, false, true, (*Cpu).opLDX},
	0xB6: {"LDX", ModeZeroPageY, 4, false, true, (*Cpu).opLDX},
	0xAE: {"LDX", ModeAbsolute, 4, false, true, (*Cpu).opLDX},
	0xBE: {"LDX", ModeAbsoluteY, 4, true, true, (*Cpu).opLDX},

	0xA0: {"LDY", ModeImmediate, 2, false, true, (*Cpu).opLDY},
	0xA4: {"LDY", ModeZeroPage, 3, false, true, (*Cpu).opLDY},
	0xB4: {"LDY", ModeZeroPageX, 4, false, true, (*Cpu).opLDY},
	0xAC: {"LDY", ModeAbsolute, 4, false, true, (*Cpu).opLDY},
	0xBC: {"LDY", ModeAbsoluteX, 4, true, true, (*Cpu).opLDY},

	0x4A: {"LSR", ModeAccumulator, 2, false, true, (*Cpu).opLSR},
	0x46: {"LSR", ModeZeroPage, 5, false, true, (*Cpu).opLSR},
	0x56: {"LSR", ModeZeroPageX, 6, false, true, (*Cpu).opLSR},
	0x4E: {"LSR", ModeAbsolute, 6, false, true, (*Cpu).opLSR},
	0x5E: {"LSR", ModeAbsoluteX, 7, false, true, (*Cpu).opLSR},

	0xEA: {"NOP", ModeImplied, 2, false, true, (*Cpu).opNOP},

	0x09: {"ORA", ModeImmediate, 2, false, true, (*Cpu).opORA},
	0x05: {"ORA", ModeZeroPage, 3, false, true, (*Cpu).opORA},
	0x15: {"ORA", ModeZeroPageX, 4, false, true, (*Cpu).opORA},
	0x0D: {"ORA", ModeAbsolute, 4, false, true, (*Cpu).opORA},
	0x1D: {"ORA", ModeAbsoluteX, 4, true, true, (*Cpu).opORA},
	0x19: {"ORA", ModeAbsoluteY, 4, true, true, (*Cpu).opORA},
	0x01: {"ORA", ModeIndirectX, 6, false, true, (*Cpu).opORA},
	0x11: {"ORA", ModeIndirectY, 5, true, true, (*Cpu).opORA},

	0x48: {"PHA", ModeImplied, 3, false, true, (*Cpu).opPHA},
	0x08: {"PHP", ModeImplied, 3, false, true, (*Cpu).opPHP},
	0x68: {"PLA", ModeImplied, 4, false, true, (*Cpu).opPLA},
	0x28: {"PLP", ModeImplied, 4, false, true, (*Cpu).opPLP},

	0x2A: {"ROL", ModeAccumulator, 2, false, true, (*Cpu).opROL},
	0x26: {"ROL", ModeZeroPage, 5, false, true, (*Cpu).opROL},
	0x36: {"ROL", ModeZeroPageX, 6, false, true, (*Cpu).opROL},
	0x2E: {"ROL", ModeAbsolute, 6, false, true, (*Cpu).opROL},
	0x3E: {"ROL", ModeAbsoluteX, 7, false, true, (*Cpu).opROL},

	0x6A: {"ROR", ModeAccumulator, 2, false, true, (*Cpu).opROR},
	0x66: {"ROR", ModeZeroPage, 5, false, true, (*Cpu).opROR},
	0x76: {"ROR", ModeZeroPageX, 6, false, true, (*Cpu).opROR},
	0x6E: {"ROR", ModeAbsolute, 6, false, true, (*Cpu).opROR},
	0x7E: {"ROR", ModeAbsoluteX, 7, false, true, (*Cpu).opROR},

	0x40: {"RTI", ModeImplied, 6, false, true, (*Cpu).opRTI},
	0x60: {"RTS", ModeImplied, 6, false, true, (*Cpu).opRTS},

	0xE9: {"SBC", ModeImmediate, 2, false, true, (*Cpu).opSBC},
	0xE5: {"SBC", ModeZeroPage, 3, false, true, (*Cpu).opSBC},
	0xF5: {"SBC", ModeZeroPageX, 4, false, true, (*Cpu).opSBC},
	0xED: {"SBC", ModeAbsolute, 4, false, true, (*Cpu).opSBC},
	0xFD: {"SBC", ModeAbsoluteX, 4, true, true, (*Cpu).opSBC},
	0xF9: {"SBC", ModeAbsoluteY, 4, true, true, (*Cpu).opSBC},
	0xE1: {"SBC", ModeIndirectX, 6, false, true, (*Cpu).opSBC},
	0xF1: {"SBC", ModeIndirectY, 5, true, true, (*Cpu).opSBC},

	0x85: {"STA", ModeZeroPage, 3, false, true, (*Cpu).opSTA},
	0x95: {"STA", ModeZeroPageX, 4, false, true, (*Cpu).opSTA},
	0x8D: {"STA", ModeAbsolute, 4, false, true, (*Cpu).opSTA},
	0x9D: {"STA", ModeAbsoluteX, 5, false, true, (*Cpu).opSTA},
	0x99: {"STA", ModeAbsoluteY, 5, false, true, (*Cpu).opSTA},
	0x81: {"STA", ModeIndirectX, 6, false, true, (*Cpu).opSTA},
	0x91: {"STA", ModeIndirectY, 6, false, true, (*Cpu).opSTA},

	0x86: {"STX", ModeZeroPage, 3, false, true, (*Cpu).opSTX},
	0x96: {"STX", ModeZeroPageY, 4, false, true, (*Cpu).opSTX},
	0x8E: {"STX", ModeAbsolute, 4, false, true, (*Cpu).opSTX},

	0x84: {"STY", ModeZeroPage, 3, false, true, (*Cpu).opSTY},
	0x94: {"STY", ModeZeroPageX, 4, false, true, (*Cpu).opSTY},
	0x8C: {"STY", ModeAbsolute, 4, false, true, (*Cpu).opSTY},

	0xAA: {"TAX", ModeImplied, 2, false, true, (*Cpu).opTAX},
	0x8A: {"TXA", ModeImplied, 2, false, true, (*Cpu).opTXA},
	0xA8: {"TAY", ModeImplied, 2, false, true, (*Cpu).opTAY},
	0x98: {"TYA", ModeImplied, 2, false, true, (*Cpu).opTYA},
	0xBA: {"TSX", ModeImplied, 2, false, true, (*Cpu).opTSX},
	0x9A: {"TXS", ModeImplied, 2, false, true, (*Cpu).opTXS},
}

// Lookup exposes one opcode table entry for tooling outside this package
// (the disassembler, the debugger) that needs to know an opcode byte's
// mnemonic and addressing mode without executing it.
func Lookup(opByte byte) (name string, mode AddrMode, valid bool) {
	op := opcodeTable[opByte]
	return op.name, op.mode, op.valid
}
