package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePPU struct {
	lastReadAddr  uint16
	lastWriteAddr uint16
	lastWriteVal  byte
	oam           [256]byte
}

func (f *fakePPU) ReadRegister(addr uint16) byte {
	f.lastReadAddr = addr
	return 0x42
}

func (f *fakePPU) WriteRegister(addr uint16, v byte) {
	f.lastWriteAddr = addr
	f.lastWriteVal = v
}

func (f *fakePPU) WriteOAMByte(i byte, v byte) {
	f.oam[i] = v
}

type fakeController struct {
	written byte
	reads   int
}

func (f *fakeController) Read() byte   { f.reads++; return 1 }
func (f *fakeController) Write(v byte) { f.written = v }

type fakeCartridge struct{ data [0xc000]byte }

func (f *fakeCartridge) ReadPRG(addr uint16) byte  { return f.data[addr-0x4020] }
func (f *fakeCartridge) WritePRG(addr uint16, v byte) {}

func TestWRAMMirroring(t *testing.T) {
	b := &Bus{}
	b.Write(0x0000, 0xAB)
	assert.Equal(t, byte(0xAB), b.Read(0x0800))
	assert.Equal(t, byte(0xAB), b.Read(0x1000))
	assert.Equal(t, byte(0xAB), b.Read(0x1800))
}

func TestPPURegisterMirroring(t *testing.T) {
	f := &fakePPU{}
	b := &Bus{PPU: f}

	b.Read(0x2000)
	assert.Equal(t, uint16(0x2000), f.lastReadAddr)

	b.Read(0x2008) // mirrors $2000
	assert.Equal(t, uint16(0x2000), f.lastReadAddr)

	b.Write(0x3FFD, 0x99) // 0x3FFD % 8 == 5 -> $2005
	assert.Equal(t, uint16(0x2005), f.lastWriteAddr)
	assert.Equal(t, byte(0x99), f.lastWriteVal)
}

func TestControllerLatch(t *testing.T) {
	f := &fakeController{}
	b := &Bus{Controller: f}
	b.Write(0x4016, 1)
	assert.Equal(t, byte(1), f.written)
	assert.Equal(t, byte(1), b.Read(0x4016))
	assert.Equal(t, 1, f.reads)
}

func TestUnmappedIORegionReadsZero(t *testing.T) {
	b := &Bus{}
	assert.Equal(t, byte(0), b.Read(0x4000))
	assert.Equal(t, byte(0), b.Read(0x4014))
	b.Write(0x4014, 0xFF) // no PPU wired: silently does nothing
}

func TestOAMDMACopiesPageIntoOAM(t *testing.T) {
	f := &fakePPU{}
	b := &Bus{PPU: f}
	b.Write(0x0200, 0xAA)
	b.Write(0x0201, 0xBB)
	b.Write(0x02FF, 0xCC)

	b.Write(0x4014, 0x02) // page 2 -> $0200-$02FF

	assert.Equal(t, byte(0xAA), f.oam[0])
	assert.Equal(t, byte(0xBB), f.oam[1])
	assert.Equal(t, byte(0xCC), f.oam[255])
}

func TestCartridgeSpace(t *testing.T) {
	f := &fakeCartridge{}
	f.data[0] = 0x10
	b := &Bus{Cartridge: f}
	assert.Equal(t, byte(0x10), b.Read(0x4020))
}

func TestNilComponentsReadZero(t *testing.T) {
	b := &Bus{}
	assert.Equal(t, byte(0), b.Read(0x2000))
	assert.Equal(t, byte(0), b.Read(0x4016))
	assert.Equal(t, byte(0), b.Read(0x8000))
}
