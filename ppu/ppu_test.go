package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeLine struct{ requested int }

func (f *fakeLine) RequestNMI() { f.requested++ }

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	p := New(nil)
	p.status = 0x80
	p.latch = true

	v := p.ReadRegister(0x2002)
	assert.Equal(t, byte(0x80), v)
	assert.Equal(t, byte(0), p.status&0x80)
	assert.False(t, p.latch)
}

func TestOAMDataPostIncrementsOnWrite(t *testing.T) {
	p := New(nil)
	p.WriteRegister(0x2003, 0x10)
	p.WriteRegister(0x2004, 0xAB)
	p.WriteRegister(0x2004, 0xCD)
	assert.Equal(t, byte(0xAB), p.OAM[0x10])
	assert.Equal(t, byte(0xCD), p.OAM[0x11])
	assert.Equal(t, byte(0x12), p.OAMAddr)
}

func TestOAMDataReadDoesNotIncrement(t *testing.T) {
	p := New(nil)
	p.OAMAddr = 5
	p.OAM[5] = 0x42
	assert.Equal(t, byte(0x42), p.ReadRegister(0x2004))
	assert.Equal(t, byte(5), p.OAMAddr)
}

func TestScrollDoubleBuffer(t *testing.T) {
	p := New(nil)
	p.WriteRegister(0x2005, 0x11)
	p.WriteRegister(0x2005, 0x22)
	x, y := p.FineScroll()
	assert.Equal(t, byte(0x11), x)
	assert.Equal(t, byte(0x22), y)
}

func TestAddrDoubleBufferAndDataAccess(t *testing.T) {
	p := New(nil)
	p.WriteRegister(0x2006, 0x20) // high byte
	p.WriteRegister(0x2006, 0x00) // low byte -> addr = 0x2000
	p.WriteRegister(0x2007, 0x77)
	assert.Equal(t, byte(0x77), p.VRAM[0x2000])
	assert.Equal(t, uint16(0x2001), p.addr)
}

func TestDataReadIsBufferedExceptPalette(t *testing.T) {
	p := New(nil)
	p.VRAM[0x1000] = 0xAA
	p.WriteRegister(0x2006, 0x10)
	p.WriteRegister(0x2006, 0x00)

	first := p.ReadRegister(0x2007) // stale buffer (0), primes buffer with 0xAA
	assert.Equal(t, byte(0), first)
	second := p.ReadRegister(0x2007) // now returns the primed buffer
	assert.Equal(t, byte(0xAA), second)

	p.VRAM[0x3f00] = 0x0f
	p.WriteRegister(0x2006, 0x3f)
	p.WriteRegister(0x2006, 0x00)
	assert.Equal(t, byte(0x0f), p.ReadRegister(0x2007)) // palette: no delay
}

func TestAddrIncrementModeBit(t *testing.T) {
	p := New(nil)
	p.Ctrl = 0x04 // bit 2 set -> increment by 32
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 1)
	assert.Equal(t, uint16(0x2020), p.addr)
}

func TestNametableMirror(t *testing.T) {
	p := New(nil)
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0x55)

	p.WriteRegister(0x2006, 0x28)
	p.WriteRegister(0x2006, 0x00)
	p.ReadRegister(0x2007) // primes the buffer from the mirrored address
	got := p.ReadRegister(0x2007)
	assert.Equal(t, byte(0x55), got)
	assert.Equal(t, byte(0x55), p.VRAM[0x2000])
}

func TestEnterVBlankRaisesNMIWhenEnabled(t *testing.T) {
	line := &fakeLine{}
	p := New(line)
	p.Ctrl = 0x80
	p.EnterVBlank()
	assert.Equal(t, byte(0x80), p.status&0x80)
	assert.Equal(t, 1, line.requested)
}

func TestEnterVBlankWithoutNMIEnabled(t *testing.T) {
	line := &fakeLine{}
	p := New(line)
	p.EnterVBlank()
	assert.Equal(t, 0, line.requested)
}

func TestClearVBlankIdempotent(t *testing.T) {
	p := New(nil)
	p.status = 0x80
	p.ClearVBlank()
	p.ClearVBlank()
	assert.Equal(t, byte(0), p.status)
}

func TestWriteOAMByteBypassesOAMAddr(t *testing.T) {
	p := New(nil)
	p.OAMAddr = 5
	p.WriteOAMByte(0x10, 0x99)
	assert.Equal(t, byte(0x99), p.OAM[0x10])
	assert.Equal(t, byte(5), p.OAMAddr) // unaffected, unlike $2004 writes
}

func TestReset(t *testing.T) {
	p := New(nil)
	p.Ctrl = 0xff
	p.OAM[0] = 1
	p.VRAM[0] = 1
	p.Reset()
	assert.Equal(t, byte(0), p.Ctrl)
	assert.Equal(t, byte(0), p.OAM[0])
	assert.Equal(t, byte(0), p.VRAM[0])
}
