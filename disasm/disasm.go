// Package disasm renders 6502 machine code as assembly text, one
// instruction at a time, for the debugger TUI and for tests that want to
// assert on the mnemonic a program counter decodes to.
package disasm

import (
	"fmt"

	"github.com/pleroux64/nesgo/cpu"
)

// Reader is the minimal memory access the disassembler needs: a single
// random-access byte read, matching cpu.BusAccess's read half.
type Reader interface {
	Read(addr uint16) byte
}

// Line formats the instruction at pc as assembly text and reports its
// total length in bytes (1-3), so callers can advance pc themselves for a
// trace disassembly. An opcode byte with no table entry is rendered as a
// raw byte, one byte long, matching how Step would reject it.
func Line(mem Reader, pc uint16) (text string, length int) {
	opByte := mem.Read(pc)
	name, mode, valid := cpu.Lookup(opByte)
	if !valid {
		return fmt.Sprintf(".byte $%02X", opByte), 1
	}

	switch mode {
	case cpu.ModeImplied:
		return name, 1
	case cpu.ModeAccumulator:
		return name + " A", 1
	case cpu.ModeImmediate:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%s #$%02X", name, v), 2
	case cpu.ModeZeroPage:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%s $%02X", name, v), 2
	case cpu.ModeZeroPageX:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%s $%02X,X", name, v), 2
	case cpu.ModeZeroPageY:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%s $%02X,Y", name, v), 2
	case cpu.ModeAbsolute:
		addr := word(mem, pc+1)
		return fmt.Sprintf("%s $%04X", name, addr), 3
	case cpu.ModeAbsoluteX:
		addr := word(mem, pc+1)
		return fmt.Sprintf("%s $%04X,X", name, addr), 3
	case cpu.ModeAbsoluteY:
		addr := word(mem, pc+1)
		return fmt.Sprintf("%s $%04X,Y", name, addr), 3
	case cpu.ModeIndirect:
		addr := word(mem, pc+1)
		return fmt.Sprintf("%s ($%04X)", name, addr), 3
	case cpu.ModeIndirectX:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%s ($%02X,X)", name, v), 2
	case cpu.ModeIndirectY:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%s ($%02X),Y", name, v), 2
	case cpu.ModeRelative:
		disp := int8(mem.Read(pc + 1))
		target := pc + 2 + uint16(disp)
		return fmt.Sprintf("%s $%04X", name, target), 2
	default:
		return name, 1
	}
}

func word(mem Reader, addr uint16) uint16 {
	lo := mem.Read(addr)
	hi := mem.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Range disassembles count instructions starting at pc, each line prefixed
// with its address, for a trace view.
func Range(mem Reader, pc uint16, count int) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		text, length := Line(mem, pc)
		lines = append(lines, fmt.Sprintf("%04X: %s", pc, text))
		pc += uint16(length)
	}
	return lines
}
