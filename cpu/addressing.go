package cpu

import "github.com/pleroux64/nesgo/mask"

// AddrMode identifies one of the 13 addressing modes a 6502 opcode may use.
type AddrMode int

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// addrModeFunc computes the effective address (or, for Implied/Accumulator,
// a meaningless zero) for one addressing mode, advancing PC over its
// operand bytes. The returned bool reports whether resolving the address
// crossed a page boundary, for read-class instructions to consume.
type addrModeFunc func(c *Cpu) (addr uint16, crossed bool)

// addressingFuncs is indexed by AddrMode.
var addressingFuncs = [...]addrModeFunc{
	ModeImplied:     addrImplied,
	ModeAccumulator: addrAccumulator,
	ModeImmediate:   addrImmediate,
	ModeZeroPage:    addrZeroPage,
	ModeZeroPageX:   addrZeroPageX,
	ModeZeroPageY:   addrZeroPageY,
	ModeAbsolute:    addrAbsolute,
	ModeAbsoluteX:   addrAbsoluteX,
	ModeAbsoluteY:   addrAbsoluteY,
	ModeIndirect:    addrIndirect,
	ModeIndirectX:   addrIndirectX,
	ModeIndirectY:   addrIndirectY,
	ModeRelative:    addrRelative,
}

func addrImplied(c *Cpu) (uint16, bool) { return 0, false }

func addrAccumulator(c *Cpu) (uint16, bool) { return 0, false }

func addrImmediate(c *Cpu) (uint16, bool) {
	addr := c.PC
	c.PC++
	return addr, false
}

func addrZeroPage(c *Cpu) (uint16, bool) {
	addr := uint16(c.Read(c.PC))
	c.PC++
	return addr, false
}

func addrZeroPageX(c *Cpu) (uint16, bool) {
	addr := uint16(c.Read(c.PC) + c.X)
	c.PC++
	return addr & 0x00ff, false
}

func addrZeroPageY(c *Cpu) (uint16, bool) {
	addr := uint16(c.Read(c.PC) + c.Y)
	c.PC++
	return addr & 0x00ff, false
}

func (c *Cpu) readAbsolute() uint16 {
	lo := c.Read(c.PC)
	hi := c.Read(c.PC + 1)
	c.PC += 2
	return mask.Word(hi, lo)
}

func addrAbsolute(c *Cpu) (uint16, bool) {
	return c.readAbsolute(), false
}

func addrAbsoluteX(c *Cpu) (uint16, bool) {
	base := c.readAbsolute()
	addr := base + uint16(c.X)
	return addr, (addr & 0xff00) != (base & 0xff00)
}

func addrAbsoluteY(c *Cpu) (uint16, bool) {
	base := c.readAbsolute()
	addr := base + uint16(c.Y)
	return addr, (addr & 0xff00) != (base & 0xff00)
}

// addrIndirect implements JMP's operand fetch, including the documented
// page-wrap bug: if the pointer's low byte is $FF, the high byte of the
// target is read from the start of the same page, not the next one.
func addrIndirect(c *Cpu) (uint16, bool) {
	ptr := c.readAbsolute()
	lo := c.Read(ptr)
	hiAddr := (ptr & 0xff00) | ((ptr + 1) & 0x00ff)
	hi := c.Read(hiAddr)
	return mask.Word(hi, lo), false
}

func addrIndirectX(c *Cpu) (uint16, bool) {
	zp := c.Read(c.PC) + c.X
	c.PC++
	lo := c.Read(uint16(zp))
	hi := c.Read(uint16(zp + 1))
	return mask.Word(hi, lo), false
}

func addrIndirectY(c *Cpu) (uint16, bool) {
	zp := c.Read(c.PC)
	c.PC++
	lo := c.Read(uint16(zp))
	hi := c.Read(uint16(zp + 1))
	base := mask.Word(hi, lo)
	addr := base + uint16(c.Y)
	return addr, (addr & 0xff00) != (base & 0xff00)
}

// addrRelative fetches the signed branch displacement and computes the
// branch target; the branch handler itself decides whether to take it and
// charges the taken/page-cross cycle penalties.
func addrRelative(c *Cpu) (uint16, bool) {
	disp := int8(c.Read(c.PC))
	c.PC++
	target := c.PC + uint16(disp)
	return target, false
}
