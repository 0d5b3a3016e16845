// Package mmu provides the memory bus for the Game Boy: a flat 64kB
// address space with byte and little-endian word access, and a bounded
// operation for loading a cartridge image into the ROM window.
//
// The MMU does no locking. Its owner is expected to drive every read
// and write from a single goroutine between instruction steps; in
// particular Write16 is two separate byte writes and must not race a
// concurrent reader.
package mmu

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

const (
	// Size is the number of addressable bytes, the full 16-bit space.
	Size = 0x10000
	// ImageSize is the size of the ROM window at 0x0000 - 0x7FFF that
	// LoadImage writes into.
	ImageSize = 0x8000
)

// IOBus is the interface that an execution engine uses to
// read and write the address space.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

var _ IOBus = (*MMU)(nil)

// MMU is the memory management unit for the Game Boy. It holds all
// 64kB of memory. The zero value is usable, but has no logger;
// use NewMMU.
type MMU struct {
	// 0x0000 - 0x7FFF - ROM (32kB), filled by LoadImage
	// 0x8000 - 0xFFFF - VRAM, external RAM, WRAM, OAM, I/O, HRAM, IE
	raw [Size]uint8

	Log log.Logger
}

// NewMMU returns a new MMU with every byte zeroed, then applies opts.
func NewMMU(opts ...Opt) *MMU {
	m := &MMU{
		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Reset zeroes the entire address space.
func (m *MMU) Reset() {
	m.raw = [Size]uint8{}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write stores value at the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// Read16 returns the little-endian word at address. The high byte is
// read from address+1, wrapping from 0xFFFF to 0x0000.
func (m *MMU) Read16(address uint16) uint16 {
	return utils.BytesToUint16(m.Read(address+1), m.Read(address))
}

// Write16 writes value as a little-endian word at address, low byte
// first. The high byte goes to address+1, wrapping like Read16.
func (m *MMU) Write16(address uint16, value uint16) {
	hi, lo := utils.Uint16ToBytes(value)
	m.Write(address, lo)
	m.Write(address+1, hi)
}

// LoadImage copies data into the ROM window starting at 0x0000.
// At most ImageSize bytes are copied; anything beyond is dropped
// silently and memory from 0x8000 upwards is never touched.
func (m *MMU) LoadImage(data []byte) {
	n := copy(m.raw[:ImageSize], data)

	if m.Log == nil {
		return
	}
	m.Log.Debugf("mmu: loaded %d byte image (xxhash %016x)", n, xxhash.Sum64(data[:n]))
	if dropped := len(data) - n; dropped > 0 {
		m.Log.Debugf("mmu: image exceeds ROM window, discarded %d bytes", dropped)
	}
}

// Checksum returns the xxhash of the entire address space. Two
// equal checksums mean, with overwhelming likelihood, that
// memory has not changed in between.
func (m *MMU) Checksum() uint64 {
	return xxhash.Sum64(m.raw[:])
}
