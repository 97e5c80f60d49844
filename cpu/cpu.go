// Package cpu implements the MOS Technology 6502 microprocessor as wired
// into the NES (the 2A03), including its documented opcodes, 13 addressing
// modes, cycle accounting, and interrupt sequencing. Unofficial opcodes and
// decimal-mode BCD arithmetic are not implemented, matching NES hardware.
package cpu

import (
	"errors"
	"fmt"

	"github.com/pleroux64/nesgo/mask"
)

// Status flag bit positions within P.
//
// 7654 3210
// NVUB DIZC
const (
	FlagC byte = 1 << iota // Carry
	FlagZ                  // Zero
	FlagI                  // Interrupt disable
	FlagD                  // Decimal (settable, never consulted by ADC/SBC)
	FlagB                  // Break (virtual: only exists in the pushed byte)
	FlagU                  // Unused (virtual: reads as 1 when pushed)
	FlagV                  // Overflow
	FlagN                  // Negative
)

// Interrupt vectors.
const (
	vectorNMI   uint16 = 0xfffa
	vectorReset uint16 = 0xfffc
	vectorIRQ   uint16 = 0xfffe
)

// BusAccess is the narrow seam the Cpu uses to reach memory, instead of
// holding a concrete *mem.Bus. This also makes the Cpu trivially testable
// against an in-memory fake.
type BusAccess interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// Cpu owns the 6502 register file and executes one opcode per Step call.
type Cpu struct {
	Bus BusAccess

	A, X, Y byte
	S       byte // stack pointer; physical address is always 0x0100|S
	P       byte // status flags
	PC      uint16

	Cycles uint64

	nmiPending bool
	irqLine    bool // level-triggered; host asserts/clears via SetIRQLine

	// curMode/curAddr are set once per Step by the active addressing mode,
	// and consumed by the instruction handler executing this cycle.
	curMode AddrMode
	curAddr uint16
}

// RequestNMI raises the edge-triggered non-maskable interrupt. It is
// idempotent between services: a second call before the CPU dispatches the
// first has no additional effect.
func (c *Cpu) RequestNMI() {
	c.nmiPending = true
}

// SetIRQLine sets or clears the level-triggered IRQ line, as a mapper or
// APU frame counter would.
func (c *Cpu) SetIRQLine(asserted bool) {
	c.irqLine = asserted
}

// Reset performs the synchronous power-on/reset sequence: PC is loaded
// from the reset vector, S is set to $FD, I is set, and the cycle counter
// is zeroed. This is the vector-fetch behavior; see DESIGN.md for why the
// hard-coded-entry-point variants are not implemented.
func (c *Cpu) Reset() {
	c.S = 0xfd
	c.P = FlagI | FlagU
	c.PC = c.readWord(vectorReset)
	c.Cycles = 0
	c.nmiPending = false
}

// Read reads one byte from the bus.
func (c *Cpu) Read(addr uint16) byte { return c.Bus.Read(addr) }

// Write writes one byte to the bus.
func (c *Cpu) Write(addr uint16, v byte) { c.Bus.Write(addr, v) }

func (c *Cpu) readWord(addr uint16) uint16 {
	lo := c.Read(addr)
	hi := c.Read(addr + 1)
	return mask.Word(hi, lo)
}

func (c *Cpu) push(v byte) {
	c.Write(0x0100|uint16(c.S), v)
	c.S--
}

func (c *Cpu) pull() byte {
	c.S++
	return c.Read(0x0100 | uint16(c.S))
}

func (c *Cpu) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return mask.Word(hi, lo)
}

// setFlag sets or clears a single bit of P.
func (c *Cpu) setFlag(flag byte, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

func (c *Cpu) getFlag(flag byte) bool { return c.P&flag != 0 }

// setZN sets the Zero and Negative flags from the given result byte, the
// shared tail of almost every load/transfer/arithmetic instruction.
func (c *Cpu) setZN(v byte) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}

// pushStatus computes the byte PHP/BRK/NMI/IRQ push: the live flags with B
// set according to which event is pushing, and U always set. B never exists
// in the stored P; U is always set there (Reset and pullStatus set it).
func (c *Cpu) pushStatus(breakFlag bool) {
	v := c.P | FlagU
	if breakFlag {
		v |= FlagB
	} else {
		v &^= FlagB
	}
	c.push(v)
}

// pullStatus restores P from a pulled byte, discarding the B/U bits pulled
// off the stack: B is cleared and U is set in the in-register P.
func (c *Cpu) pullStatus() {
	v := c.pull()
	c.P = (v &^ (FlagB | FlagU)) | FlagU
}

// ErrIllegalOpcode is returned by Step when the opcode byte at PC has no
// entry in the table of 151 documented instructions.
var ErrIllegalOpcode = errors.New("cpu: illegal opcode")

// Step executes exactly one unit of work: if an NMI is pending it is
// dispatched (and nothing else happens this call); otherwise, if the IRQ
// line is asserted and I is clear, the IRQ is dispatched; otherwise one
// opcode is fetched, decoded, and executed. It returns the number of cycles
// charged.
func (c *Cpu) Step() (int, error) {
	if c.nmiPending {
		c.nmiPending = false
		c.dispatchInterrupt(vectorNMI, false)
		c.Cycles += 7
		return 7, nil
	}
	if c.irqLine && !c.getFlag(FlagI) {
		c.dispatchInterrupt(vectorIRQ, false)
		c.Cycles += 7
		return 7, nil
	}

	opByte := c.Read(c.PC)
	op := opcodeTable[opByte]
	if !op.valid {
		return 0, fmt.Errorf("%w: opcode %#02x at pc %#04x", ErrIllegalOpcode, opByte, c.PC)
	}
	c.PC++

	addr, crossed := addressingFuncs[op.mode](c)
	c.curMode = op.mode
	c.curAddr = addr

	extra := op.fn(c)

	total := int(op.cycles) + int(extra)
	if crossed && op.pageCrossExtra {
		total++
	}
	c.Cycles += uint64(total)
	return total, nil
}

// dispatchInterrupt runs the shared NMI/IRQ/BRK push sequence. brk is true
// only when called from the BRK instruction, which has already advanced PC
// past its padding byte and wants B set in the pushed status.
func (c *Cpu) dispatchInterrupt(vector uint16, brk bool) {
	c.pushWord(c.PC)
	c.pushStatus(brk)
	c.setFlag(FlagI, true)
	c.PC = c.readWord(vector)
}

// loadOperand reads the value an instruction operates on: the Accumulator
// itself in Accumulator mode, otherwise the byte at curAddr.
func (c *Cpu) loadOperand() byte {
	if c.curMode == ModeAccumulator {
		return c.A
	}
	return c.Read(c.curAddr)
}

// storeOperand writes a value back to wherever loadOperand read it from.
func (c *Cpu) storeOperand(v byte) {
	if c.curMode == ModeAccumulator {
		c.A = v
		return
	}
	c.Write(c.curAddr, v)
}
