package cpu

// opcodeTable is the dense 256 entry instruction dispatch table. The
// mnemonic/addressing-mode pairing for every byte matches the standard
// NMOS 6502 matrix (including the commonly emulated unofficial
// opcodes); base cycle costs follow the canonical timing table, with
// extraOnCross marking the handful of read-only indexed opcodes that
// bill one more cycle when the index crosses a page boundary.
var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", modeImplied, 7, false, execBRK},
	0x01: {"ORA", modeIndirectX, 6, false, execORA},
	0x02: {"KIL", modeImplied, 3, false, execKIL},
	0x03: {"SLO", modeIndirectX, 8, false, execSLO},
	0x04: {"NOP", modeZeroPage, 3, false, execNOP},
	0x05: {"ORA", modeZeroPage, 3, false, execORA},
	0x06: {"ASL", modeZeroPage, 5, false, execASL},
	0x07: {"SLO", modeZeroPage, 5, false, execSLO},
	0x08: {"PHP", modeImplied, 3, false, execPHP},
	0x09: {"ORA", modeImmediate, 2, false, execORA},
	0x0A: {"ASL", modeAccumulator, 2, false, execASL},
	0x0B: {"ANC", modeImmediate, 2, false, execANC},
	0x0C: {"NOP", modeAbsolute, 4, false, execNOP},
	0x0D: {"ORA", modeAbsolute, 4, false, execORA},
	0x0E: {"ASL", modeAbsolute, 6, false, execASL},
	0x0F: {"SLO", modeAbsolute, 6, false, execSLO},

	0x10: {"BPL", modeRelative, 2, false, execBPL},
	0x11: {"ORA", modeIndirectY, 5, true, execORA},
	0x12: {"KIL", modeImplied, 3, false, execKIL},
	0x13: {"SLO", modeIndirectY, 8, false, execSLO},
	0x14: {"NOP", modeZeroPageX, 4, false, execNOP},
	0x15: {"ORA", modeZeroPageX, 4, false, execORA},
	0x16: {"ASL", modeZeroPageX, 6, false, execASL},
	0x17: {"SLO", modeZeroPageX, 6, false, execSLO},
	0x18: {"CLC", modeImplied, 2, false, execCLC},
	0x19: {"ORA", modeAbsoluteY, 4, true, execORA},
	0x1A: {"NOP", modeImplied, 2, false, execNOP},
	0x1B: {"SLO", modeAbsoluteY, 7, false, execSLO},
	0x1C: {"NOP", modeAbsoluteX, 4, true, execNOP},
	0x1D: {"ORA", modeAbsoluteX, 4, true, execORA},
	0x1E: {"ASL", modeAbsoluteX, 7, false, execASL},
	0x1F: {"SLO", modeAbsoluteX, 7, false, execSLO},

	0x20: {"JSR", modeAbsolute, 6, false, execJSR},
	0x21: {"AND", modeIndirectX, 6, false, execAND},
	0x22: {"KIL", modeImplied, 3, false, execKIL},
	0x23: {"RLA", modeIndirectX, 8, false, execRLA},
	0x24: {"BIT", modeZeroPage, 3, false, execBIT},
	0x25: {"AND", modeZeroPage, 3, false, execAND},
	0x26: {"ROL", modeZeroPage, 5, false, execROL},
	0x27: {"RLA", modeZeroPage, 5, false, execRLA},
	0x28: {"PLP", modeImplied, 4, false, execPLP},
	0x29: {"AND", modeImmediate, 2, false, execAND},
	0x2A: {"ROL", modeAccumulator, 2, false, execROL},
	0x2B: {"ANC", modeImmediate, 2, false, execANC},
	0x2C: {"BIT", modeAbsolute, 4, false, execBIT},
	0x2D: {"AND", modeAbsolute, 4, false, execAND},
	0x2E: {"ROL", modeAbsolute, 6, false, execROL},
	0x2F: {"RLA", modeAbsolute, 6, false, execRLA},

	0x30: {"BMI", modeRelative, 2, false, execBMI},
	0x31: {"AND", modeIndirectY, 5, true, execAND},
	0x32: {"KIL", modeImplied, 3, false, execKIL},
	0x33: {"RLA", modeIndirectY, 8, false, execRLA},
	0x34: {"NOP", modeZeroPageX, 4, false, execNOP},
	0x35: {"AND", modeZeroPageX, 4, false, execAND},
	0x36: {"ROL", modeZeroPageX, 6, false, execROL},
	0x37: {"RLA", modeZeroPageX, 6, false, execRLA},
	0x38: {"SEC", modeImplied, 2, false, execSEC},
	0x39: {"AND", modeAbsoluteY, 4, true, execAND},
	0x3A: {"NOP", modeImplied, 2, false, execNOP},
	0x3B: {"RLA", modeAbsoluteY, 7, false, execRLA},
	0x3C: {"NOP", modeAbsoluteX, 4, true, execNOP},
	0x3D: {"AND", modeAbsoluteX, 4, true, execAND},
	0x3E: {"ROL", modeAbsoluteX, 7, false, execROL},
	0x3F: {"RLA", modeAbsoluteX, 7, false, execRLA},

	0x40: {"RTI", modeImplied, 6, false, execRTI},
	0x41: {"EOR", modeIndirectX, 6, false, execEOR},
	0x42: {"KIL", modeImplied, 3, false, execKIL},
	0x43: {"SRE", modeIndirectX, 8, false, execSRE},
	0x44: {"NOP", modeZeroPage, 3, false, execNOP},
	0x45: {"EOR", modeZeroPage, 3, false, execEOR},
	0x46: {"LSR", modeZeroPage, 5, false, execLSR},
	0x47: {"SRE", modeZeroPage, 5, false, execSRE},
	0x48: {"PHA", modeImplied, 3, false, execPHA},
	0x49: {"EOR", modeImmediate, 2, false, execEOR},
	0x4A: {"LSR", modeAccumulator, 2, false, execLSR},
	0x4B: {"ALR", modeImmediate, 2, false, execALR},
	0x4C: {"JMP", modeAbsolute, 3, false, execJMP},
	0x4D: {"EOR", modeAbsolute, 4, false, execEOR},
	0x4E: {"LSR", modeAbsolute, 6, false, execLSR},
	0x4F: {"SRE", modeAbsolute, 6, false, execSRE},

	0x50: {"BVC", modeRelative, 2, false, execBVC},
	0x51: {"EOR", modeIndirectY, 5, true, execEOR},
	0x52: {"KIL", modeImplied, 3, false, execKIL},
	0x53: {"SRE", modeIndirectY, 8, false, execSRE},
	0x54: {"NOP", modeZeroPageX, 4, false, execNOP},
	0x55: {"EOR", modeZeroPageX, 4, false, execEOR},
	0x56: {"LSR", modeZeroPageX, 6, false, execLSR},
	0x57: {"SRE", modeZeroPageX, 6, false, execSRE},
	0x58: {"CLI", modeImplied, 2, false, execCLI},
	0x59: {"EOR", modeAbsoluteY, 4, true, execEOR},
	0x5A: {"NOP", modeImplied, 2, false, execNOP},
	0x5B: {"SRE", modeAbsoluteY, 7, false, execSRE},
	0x5C: {"NOP", modeAbsoluteX, 4, true, execNOP},
	0x5D: {"EOR", modeAbsoluteX, 4, true, execEOR},
	0x5E: {"LSR", modeAbsoluteX, 7, false, execLSR},
	0x5F: {"SRE", modeAbsoluteX, 7, false, execSRE},

	0x60: {"RTS", modeImplied, 6, false, execRTS},
	0x61: {"ADC", modeIndirectX, 6, false, execADC},
	0x62: {"KIL", modeImplied, 3, false, execKIL},
	0x63: {"RRA", modeIndirectX, 8, false, execRRA},
	0x64: {"NOP", modeZeroPage, 3, false, execNOP},
	0x65: {"ADC", modeZeroPage, 3, false, execADC},
	0x66: {"ROR", modeZeroPage, 5, false, execROR},
	0x67: {"RRA", modeZeroPage, 5, false, execRRA},
	0x68: {"PLA", modeImplied, 4, false, execPLA},
	0x69: {"ADC", modeImmediate, 2, false, execADC},
	0x6A: {"ROR", modeAccumulator, 2, false, execROR},
	0x6B: {"ARR", modeImmediate, 2, false, execARR},
	0x6C: {"JMP", modeIndirect, 5, false, execJMP},
	0x6D: {"ADC", modeAbsolute, 4, false, execADC},
	0x6E: {"ROR", modeAbsolute, 6, false, execROR},
	0x6F: {"RRA", modeAbsolute, 6, false, execRRA},

	0x70: {"BVS", modeRelative, 2, false, execBVS},
	0x71: {"ADC", modeIndirectY, 5, true, execADC},
	0x72: {"KIL", modeImplied, 3, false, execKIL},
	0x73: {"RRA", modeIndirectY, 8, false, execRRA},
	0x74: {"NOP", modeZeroPageX, 4, false, execNOP},
	0x75: {"ADC", modeZeroPageX, 4, false, execADC},
	0x76: {"ROR", modeZeroPageX, 6, false, execROR},
	0x77: {"RRA", modeZeroPageX, 6, false, execRRA},
	0x78: {"SEI", modeImplied, 2, false, execSEI},
	0x79: {"ADC", modeAbsoluteY, 4, true, execADC},
	0x7A: {"NOP", modeImplied, 2, false, execNOP},
	0x7B: {"RRA", modeAbsoluteY, 7, false, execRRA},
	0x7C: {"NOP", modeAbsoluteX, 4, true, execNOP},
	0x7D: {"ADC", modeAbsoluteX, 4, true, execADC},
	0x7E: {"ROR", modeAbsoluteX, 7, false, execROR},
	0x7F: {"RRA", modeAbsoluteX, 7, false, execRRA},

	0x80: {"NOP", modeImmediate, 2, false, execNOP},
	0x81: {"STA", modeIndirectX, 6, false, execSTA},
	0x82: {"NOP", modeImmediate, 2, false, execNOP},
	0x83: {"SAX", modeIndirectX, 6, false, execSAX},
	0x84: {"STY", modeZeroPage, 3, false, execSTY},
	0x85: {"STA", modeZeroPage, 3, false, execSTA},
	0x86: {"STX", modeZeroPage, 3, false, execSTX},
	0x87: {"SAX", modeZeroPage, 3, false, execSAX},
	0x88: {"DEY", modeImplied, 2, false, execDEY},
	0x89: {"NOP", modeImmediate, 2, false, execNOP},
	0x8A: {"TXA", modeImplied, 2, false, execTXA},
	0x8B: {"XAA", modeImmediate, 2, false, execXAA},
	0x8C: {"STY", modeAbsolute, 4, false, execSTY},
	0x8D: {"STA", modeAbsolute, 4, false, execSTA},
	0x8E: {"STX", modeAbsolute, 4, false, execSTX},
	0x8F: {"SAX", modeAbsolute, 4, false, execSAX},

	0x90: {"BCC", modeRelative, 2, false, execBCC},
	0x91: {"STA", modeIndirectY, 6, false, execSTA},
	0x92: {"KIL", modeImplied, 3, false, execKIL},
	0x93: {"AHX", modeIndirectY, 6, false, execAHX},
	0x94: {"STY", modeZeroPageX, 4, false, execSTY},
	0x95: {"STA", modeZeroPageX, 4, false, execSTA},
	0x96: {"STX", modeZeroPageY, 4, false, execSTX},
	0x97: {"SAX", modeZeroPageY, 4, false, execSAX},
	0x98: {"TYA", modeImplied, 2, false, execTYA},
	0x99: {"STA", modeAbsoluteY, 5, false, execSTA},
	0x9A: {"TXS", modeImplied, 2, false, execTXS},
	0x9B: {"TAS", modeAbsoluteY, 5, false, execTAS},
	0x9C: {"SHY", modeAbsoluteX, 5, false, execSHY},
	0x9D: {"STA", modeAbsoluteX, 5, false, execSTA},
	0x9E: {"SHX", modeAbsoluteY, 5, false, execSHX},
	0x9F: {"AHX", modeAbsoluteY, 5, false, execAHX},

	0xA0: {"LDY", modeImmediate, 2, false, execLDY},
	0xA1: {"LDA", modeIndirectX, 6, false, execLDA},
	0xA2: {"LDX", modeImmediate, 2, false, execLDX},
	0xA3: {"LAX", modeIndirectX, 6, false, execLAX},
	0xA4: {"LDY", modeZeroPage, 3, false, execLDY},
	0xA5: {"LDA", modeZeroPage, 3, false, execLDA},
	0xA6: {"LDX", modeZeroPage, 3, false, execLDX},
	0xA7: {"LAX", modeZeroPage, 3, false, execLAX},
	0xA8: {"TAY", modeImplied, 2, false, execTAY},
	0xA9: {"LDA", modeImmediate, 2, false, execLDA},
	0xAA: {"TAX", modeImplied, 2, false, execTAX},
	0xAB: {"OAL", modeImmediate, 2, false, execOAL},
	0xAC: {"LDY", modeAbsolute, 4, false, execLDY},
	0xAD: {"LDA", modeAbsolute, 4, false, execLDA},
	0xAE: {"LDX", modeAbsolute, 4, false, execLDX},
	0xAF: {"LAX", modeAbsolute, 4, false, execLAX},

	0xB0: {"BCS", modeRelative, 2, false, execBCS},
	0xB1: {"LDA", modeIndirectY, 5, true, execLDA},
	0xB2: {"KIL", modeImplied, 3, false, execKIL},
	0xB3: {"LAX", modeIndirectY, 5, true, execLAX},
	0xB4: {"LDY", modeZeroPageX, 4, false, execLDY},
	0xB5: {"LDA", modeZeroPageX, 4, false, execLDA},
	0xB6: {"LDX", modeZeroPageY, 4, false, execLDX},
	0xB7: {"LAX", modeZeroPageY, 4, false, execLAX},
	0xB8: {"CLV", modeImplied, 2, false, execCLV},
	0xB9: {"LDA", modeAbsoluteY, 4, true, execLDA},
	0xBA: {"TSX", modeImplied, 2, false, execTSX},
	0xBB: {"LAS", modeAbsoluteY, 4, true, execLAS},
	0xBC: {"LDY", modeAbsoluteX, 4, true, execLDY},
	0xBD: {"LDA", modeAbsoluteX, 4, true, execLDA},
	0xBE: {"LDX", modeAbsoluteY, 4, true, execLDX},
	0xBF: {"LAX", modeAbsoluteY, 4, true, execLAX},

	0xC0: {"CPY", modeImmediate, 2, false, execCPY},
	0xC1: {"CMP", modeIndirectX, 6, false, execCMP},
	0xC2: {"NOP", modeImmediate, 2, false, execNOP},
	0xC3: {"DCP", modeIndirectX, 8, false, execDCP},
	0xC4: {"CPY", modeZeroPage, 3, false, execCPY},
	0xC5: {"CMP", modeZeroPage, 3, false, execCMP},
	0xC6: {"DEC", modeZeroPage, 5, false, execDEC},
	0xC7: {"DCP", modeZeroPage, 5, false, execDCP},
	0xC8: {"INY", modeImplied, 2, false, execINY},
	0xC9: {"CMP", modeImmediate, 2, false, execCMP},
	0xCA: {"DEX", modeImplied, 2, false, execDEX},
	0xCB: {"AXS", modeImmediate, 2, false, execAXS},
	0xCC: {"CPY", modeAbsolute, 4, false, execCPY},
	0xCD: {"CMP", modeAbsolute, 4, false, execCMP},
	0xCE: {"DEC", modeAbsolute, 6, false, execDEC},
	0xCF: {"DCP", modeAbsolute, 6, false, execDCP},

	0xD0: {"BNE", modeRelative, 2, false, execBNE},
	0xD1: {"CMP", modeIndirectY, 5, true, execCMP},
	0xD2: {"KIL", modeImplied, 3, false, execKIL},
	0xD3: {"DCP", modeIndirectY, 8, false, execDCP},
	0xD4: {"NOP", modeZeroPageX, 4, false, execNOP},
	0xD5: {"CMP", modeZeroPageX, 4, false, execCMP},
	0xD6: {"DEC", modeZeroPageX, 6, false, execDEC},
	0xD7: {"DCP", modeZeroPageX, 6, false, execDCP},
	0xD8: {"CLD", modeImplied, 2, false, execCLD},
	0xD9: {"CMP", modeAbsoluteY, 4, true, execCMP},
	0xDA: {"NOP", modeImplied, 2, false, execNOP},
	0xDB: {"DCP", modeAbsoluteY, 7, false, execDCP},
	0xDC: {"NOP", modeAbsoluteX, 4, true, execNOP},
	0xDD: {"CMP", modeAbsoluteX, 4, true, execCMP},
	0xDE: {"DEC", modeAbsoluteX, 7, false, execDEC},
	0xDF: {"DCP", modeAbsoluteX, 7, false, execDCP},

	0xE0: {"CPX", modeImmediate, 2, false, execCPX},
	0xE1: {"SBC", modeIndirectX, 6, false, execSBC},
	0xE2: {"NOP", modeImmediate, 2, false, execNOP},
	0xE3: {"ISC", modeIndirectX, 8, false, execISC},
	0xE4: {"CPX", modeZeroPage, 3, false, execCPX},
	0xE5: {"SBC", modeZeroPage, 3, false, execSBC},
	0xE6: {"INC", modeZeroPage, 5, false, execINC},
	0xE7: {"ISC", modeZeroPage, 5, false, execISC},
	0xE8: {"INX", modeImplied, 2, false, execINX},
	0xE9: {"SBC", modeImmediate, 2, false, execSBC},
	0xEA: {"NOP", modeImplied, 2, false, execNOP},
	0xEB: {"SBC", modeImmediate, 2, false, execSBC},
	0xEC: {"CPX", modeAbsolute, 4, false, execCPX},
	0xED: {"SBC", modeAbsolute, 4, false, execSBC},
	0xEE: {"INC", modeAbsolute, 6, false, execINC},
	0xEF: {"ISC", modeAbsolute, 6, false, execISC},

	0xF0: {"BEQ", modeRelative, 2, false, execBEQ},
	0xF1: {"SBC", modeIndirectY, 5, true, execSBC},
	0xF2: {"KIL", modeImplied, 3, false, execKIL},
	0xF3: {"ISC", modeIndirectY, 8, false, execISC},
	0xF4: {"NOP", modeZeroPageX, 4, false, execNOP},
	0xF5: {"SBC", modeZeroPageX, 4, false, execSBC},
	0xF6: {"INC", modeZeroPageX, 6, false, execINC},
	0xF7: {"ISC", modeZeroPageX, 6, false, execISC},
	0xF8: {"SED", modeImplied, 2, false, execSED},
	0xF9: {"SBC", modeAbsoluteY, 4, true, execSBC},
	0xFA: {"NOP", modeImplied, 2, false, execNOP},
	0xFB: {"ISC", modeAbsoluteY, 7, false, execISC},
	0xFC: {"NOP", modeAbsoluteX, 4, true, execNOP},
	0xFD: {"SBC", modeAbsoluteX, 4, true, execSBC},
	0xFE: {"INC", modeAbsoluteX, 7, false, execINC},
	0xFF: {"ISC", modeAbsoluteX, 7, false, execISC},
}
