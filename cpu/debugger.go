package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// DebugBus extends BusAccess with what the debugger needs to render memory
// pages directly, bypassing any PPU/controller side effects a plain Read
// would trigger.
type DebugBus interface {
	BusAccess
	Snapshot() [65536]byte
}

type model struct {
	cpu *Cpu
	mem DebugBus

	offset uint16 // only for drawing pageTable
	prevPC uint16
	err    error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	m.cpu.PC = m.offset
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			if _, err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders a single page as a line. The current PC is highlighted.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	snap := m.mem.Snapshot()
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range snap[start : start+16] {
		if start+uint16(i) == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []byte{FlagN, FlagV, FlagU, FlagB, FlagD, FlagI, FlagZ, FlagC} {
		if m.cpu.P&flag != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
 cyc: %d
N V U B D I Z C
`,
		m.cpu.PC,
		m.prevPC,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.S,
		m.cpu.Cycles,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	offsets := []int{
		0, 16, 32, 48, 64,
		int(m.offset),
		int(m.offset + 16*1),
		int(m.offset + 16*2),
		int(m.offset + 16*3),
		int(m.offset + 16*4),
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	op := opcodeTable[m.cpu.Read(m.cpu.PC)]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(op),
	)
}

// Debug starts an interactive TUI stepping the CPU one instruction at a
// time, showing the register file, flags, and a window of memory pages
// around the reset vector. Press space or j to step, q to quit.
func (c *Cpu) Debug(mem DebugBus, offset uint16) {
	c.Bus = mem
	c.PC = offset

	out, err := tea.NewProgram(model{
		cpu:    c,
		mem:    mem,
		offset: offset,
	}).Run()
	if err != nil {
		panic(err)
	}
	if x, ok := out.(model); ok && x.err != nil {
		fmt.Println("Error:", x.err)
	}
}
