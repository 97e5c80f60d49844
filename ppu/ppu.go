// Package ppu implements the eight memory-mapped PPU registers the CPU
// observes through the Bus, along with the OAM and VRAM they front and the
// NMI handshake at vertical blank. Full picture synthesis (background and
// sprite pixel generation, scrolling mid-scanline effects, sprite-0 hit) is
// out of scope; this shim only models the register-level contract a ROM's
// CPU code can observe.
package ppu

import "github.com/pleroux64/nesgo/mask"

// InterruptLine is the narrow seam the Ppu uses to signal the CPU, instead
// of holding a raw *cpu.Cpu pointer (see the top-level Design Notes on
// breaking the CPU/PPU cyclic ownership the original source had).
type InterruptLine interface {
	RequestNMI()
}

const (
	vramSize = 0x4000
	oamSize  = 256
)

// Ppu holds the register-visible state of the picture processor.
type Ppu struct {
	Ctrl   byte // $2000 PPUCTRL
	Mask   byte // $2001 PPUMASK
	status byte // $2002 PPUSTATUS (bit 7 is VBlank)
	OAMAddr byte // $2003 OAMADDR

	OAM  [oamSize]byte
	VRAM [vramSize]byte

	addr       uint16 // internal 14-bit VRAM address, $2006/$2007
	latch      bool   // shared write-twice latch for $2005/$2006
	fineX      byte
	fineY      byte
	readBuffer byte // $2007 reads are buffered one byte behind, except palette

	irq InterruptLine
}

// New constructs a Ppu wired to the given interrupt line.
func New(irq InterruptLine) *Ppu {
	return &Ppu{irq: irq}
}

// Reset zeroes all registers, OAM, VRAM, and the address/scroll latch.
func (p *Ppu) Reset() {
	p.Ctrl = 0
	p.Mask = 0
	p.status = 0
	p.OAMAddr = 0
	p.OAM = [oamSize]byte{}
	p.VRAM = [vramSize]byte{}
	p.addr = 0
	p.latch = false
	p.fineX = 0
	p.fineY = 0
	p.readBuffer = 0
}

// LoadCHR copies CHR-ROM (or leaves CHR-RAM zeroed, per cartridge.Load) into
// the pattern-table region of VRAM.
func (p *Ppu) LoadCHR(chr []byte) {
	n := copy(p.VRAM[:0x2000], chr)
	_ = n
}

// nametableMirror resolves $2800-$2FFF to its $2000-$27FF mirror; the test
// corpus only probes the $2000 window (spec note), so other mirroring
// modes are not distinguished.
func nametableMirror(addr uint16) uint16 {
	if addr >= 0x2800 && addr <= 0x2fff {
		return addr - 0x0800
	}
	return addr
}

func (p *Ppu) vramRead(addr uint16) byte {
	addr &= 0x3fff
	addr = nametableMirror(addr)
	return p.VRAM[addr]
}

func (p *Ppu) vramWrite(addr uint16, v byte) {
	addr &= 0x3fff
	addr = nametableMirror(addr)
	p.VRAM[addr] = v
}

func (p *Ppu) addrIncrement() uint16 {
	if mask.IsSet(p.Ctrl, mask.I6) { // bit 2
		return 32
	}
	return 1
}

// nmiEnabled reports whether PPUCTRL bit 7 requests an NMI at vblank.
func (p *Ppu) nmiEnabled() bool {
	return mask.IsSet(p.Ctrl, mask.I1) // bit 7
}

// ReadRegister services a CPU read of a mirrored PPU register address
// ($2000-$3FFF, already folded to $2000-$2007 by the Bus).
func (p *Ppu) ReadRegister(addr uint16) byte {
	switch addr {
	case 0x2002: // PPUSTATUS
		v := p.status
		p.status &^= 0x80
		p.latch = false
		return v
	case 0x2004: // OAMDATA
		return p.OAM[p.OAMAddr]
	case 0x2007: // PPUDATA
		var v byte
		if p.addr&0x3fff >= 0x3f00 {
			v = p.vramRead(p.addr) // palette reads are not buffered (not modeled further)
		} else {
			v = p.readBuffer
			p.readBuffer = p.vramRead(p.addr)
		}
		p.addr = (p.addr + p.addrIncrement()) & 0x3fff
		return v
	default:
		return 0
	}
}

// WriteRegister services a CPU write to a mirrored PPU register address.
func (p *Ppu) WriteRegister(addr uint16, v byte) {
	switch addr {
	case 0x2000: // PPUCTRL
		p.Ctrl = v
	case 0x2001: // PPUMASK
		p.Mask = v
	case 0x2003: // OAMADDR
		p.OAMAddr = v
	case 0x2004: // OAMDATA
		p.OAM[p.OAMAddr] = v
		p.OAMAddr++
	case 0x2005: // PPUSCROLL
		if !p.latch {
			p.fineX = v
		} else {
			p.fineY = v
		}
		p.latch = !p.latch
	case 0x2006: // PPUADDR
		if !p.latch {
			p.addr = (p.addr & 0x00ff) | uint16(v)<<8
		} else {
			p.addr = (p.addr & 0xff00) | uint16(v)
		}
		p.latch = !p.latch
	case 0x2007: // PPUDATA
		p.vramWrite(p.addr, v)
		p.addr = (p.addr + p.addrIncrement()) & 0x3fff
	}
}

// WriteOAMByte writes one byte directly into OAM by index, bypassing OAMADDR
// and its post-increment. Used by the Bus to service OAM-DMA ($4014), which
// copies a whole page into OAM in one CPU write.
func (p *Ppu) WriteOAMByte(i byte, v byte) {
	p.OAM[i] = v
}

// FineScroll returns the latched fine-X and fine-Y scroll values.
func (p *Ppu) FineScroll() (x, y byte) { return p.fineX, p.fineY }

// EnterVBlank is called once per frame by the external frame driver. It
// sets the VBlank status bit and, if PPUCTRL requests it, raises NMI.
func (p *Ppu) EnterVBlank() {
	p.status |= 0x80
	if p.nmiEnabled() && p.irq != nil {
		p.irq.RequestNMI()
	}
}

// ClearVBlank is an idempotent pre-frame hook that clears the VBlank bit.
func (p *Ppu) ClearVBlank() {
	p.status &^= 0x80
}

// Status returns the raw PPUSTATUS byte without the $2002 read side
// effects, for host-side inspection/testing.
func (p *Ppu) Status() byte { return p.status }
