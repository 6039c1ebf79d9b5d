// This file is part of Gopherdol.
//
// Gopherdol is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdol is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdol.  If not, see <https://www.gnu.org/licenses/>.

// Package memory implements the console's main memory. Both banks are backed
// by flat byte slices and are addressable through the cached and uncached
// windows described by the memorymap package. All multi-byte access is big
// endian, as seen by the console's CPU.
//
// Access to an address that is not backed by RAM is legal. Reads return zero
// and writes are dropped.
package memory

import (
	"encoding/binary"

	"github.com/jetsetilly/gopherdol/hardware/memory/memorymap"
)

// Memory is the console's main memory.
type Memory struct {
	mem1 []byte
	mem2 []byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		mem1: make([]byte, memorymap.SizeMEM1),
		mem2: make([]byte, memorymap.SizeMEM2),
	}
}

// Reset contents of memory.
func (mem *Memory) Reset() {
	clear(mem.mem1)
	clear(mem.mem2)
}

// bank returns the backing slice and normalised index for an access of the
// given width. A nil slice means the access is not backed by RAM.
func (mem *Memory) bank(address uint32, width uint32) ([]byte, uint32) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.MEM1:
		idx := ma ^ memorymap.OriginMEM1
		if idx+width <= memorymap.SizeMEM1 {
			return mem.mem1, idx
		}
	case memorymap.MEM2:
		idx := ma ^ memorymap.OriginMEM2
		if idx+width <= memorymap.SizeMEM2 {
			return mem.mem2, idx
		}
	}

	return nil, 0
}

// Read8 returns the byte at address.
func (mem *Memory) Read8(address uint32) uint8 {
	b, idx := mem.bank(address, 1)
	if b == nil {
		return 0
	}
	return b[idx]
}

// Read16 returns the 16bit value at address.
func (mem *Memory) Read16(address uint32) uint16 {
	b, idx := mem.bank(address, 2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b[idx:])
}

// Read32 returns the 32bit value at address.
func (mem *Memory) Read32(address uint32) uint32 {
	b, idx := mem.bank(address, 4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b[idx:])
}

// Write8 writes a byte to address.
func (mem *Memory) Write8(address uint32, value uint8) {
	b, idx := mem.bank(address, 1)
	if b == nil {
		return
	}
	b[idx] = value
}

// Write16 writes a 16bit value to address.
func (mem *Memory) Write16(address uint32, value uint16) {
	b, idx := mem.bank(address, 2)
	if b == nil {
		return
	}
	binary.BigEndian.PutUint16(b[idx:], value)
}

// Write32 writes a 32bit value to address.
func (mem *Memory) Write32(address uint32, value uint32) {
	b, idx := mem.bank(address, 4)
	if b == nil {
		return
	}
	binary.BigEndian.PutUint32(b[idx:], value)
}

// IsRAMAddress returns true if the address is backed by RAM, through either
// the cached or the uncached window.
func (mem *Memory) IsRAMAddress(address uint32) bool {
	_, area := memorymap.MapAddress(address)
	return area != memorymap.Undefined
}

// IsInstructionAddress returns true if the CPU could fetch an instruction
// from the address. Instruction fetch only works through the cached window.
func (mem *Memory) IsInstructionAddress(address uint32) bool {
	if !memorymap.Cached(address) {
		return false
	}
	return mem.IsRAMAddress(address)
}
