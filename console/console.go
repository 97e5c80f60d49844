// Package console assembles the Bus, Cpu, Ppu, Controller, and Cartridge
// into one runnable machine, owning the narrow interfaces (ppu.InterruptLine,
// mem.PPUPort, mem.Controller, mem.Cartridge) that let the CPU and PPU
// reference each other without either holding a raw pointer to the other.
package console

import (
	"fmt"
	"io"

	"github.com/pleroux64/nesgo/cartridge"
	"github.com/pleroux64/nesgo/cpu"
	"github.com/pleroux64/nesgo/input"
	"github.com/pleroux64/nesgo/mem"
	"github.com/pleroux64/nesgo/ppu"
)

// Console owns every component of one NES and the wiring between them.
type Console struct {
	Cpu        *cpu.Cpu
	Ppu        *ppu.Ppu
	Bus        *mem.Bus
	Controller *input.Controller
	Cartridge  *cartridge.Cartridge
}

// New loads rom and wires a complete, reset-ready machine: the Ppu raises
// NMI through the Cpu, the Bus forwards PPU register and controller
// accesses, and the Cpu reaches all of memory only through the Bus.
func New(rom io.Reader) (*Console, error) {
	cart, err := cartridge.Load(rom)
	if err != nil {
		return nil, fmt.Errorf("console: load rom: %w", err)
	}

	c := &cpu.Cpu{}
	p := ppu.New(c) // Cpu implements ppu.InterruptLine via RequestNMI
	if len(cart.CHR) > 0 {
		p.LoadCHR(cart.CHR)
	}
	ctrl := &input.Controller{}

	bus := &mem.Bus{
		PPU:        p,
		Controller: ctrl,
		Cartridge:  cart,
	}
	c.Bus = bus

	return &Console{
		Cpu:        c,
		Ppu:        p,
		Bus:        bus,
		Controller: ctrl,
		Cartridge:  cart,
	}, nil
}

// Reset performs the power-on/reset sequence on both chips: the Cpu loads
// PC from the reset vector, and the Ppu's registers and OAM/VRAM clear. The
// cartridge's CHR-ROM, if any, is then copied back into the pattern tables.
func (m *Console) Reset() {
	m.Cpu.Reset()
	m.Ppu.Reset()
	if m.Cartridge != nil && len(m.Cartridge.CHR) > 0 {
		m.Ppu.LoadCHR(m.Cartridge.CHR)
	}
}

// Step executes exactly one Cpu instruction (or interrupt dispatch) and
// returns the cycles it charged.
func (m *Console) Step() (int, error) {
	return m.Cpu.Step()
}

// EndFrame signals vertical blank to the Ppu, which raises NMI on the Cpu
// if PPUCTRL has NMI generation enabled. Call StartFrame before the next
// frame's rendering window starts.
func (m *Console) EndFrame() {
	m.Ppu.EnterVBlank()
}

// StartFrame clears the Ppu's VBlank flag, as real hardware does at the
// start of the next frame's pre-render line.
func (m *Console) StartFrame() {
	m.Ppu.ClearVBlank()
}
