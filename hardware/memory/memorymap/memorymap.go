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

// Package memorymap describes the console's virtual address space as the
// patch engine sees it. The two banks of main memory each appear twice, once
// through the cached window and once through the uncached window. The
// MapAddress() function normalises an address from either window to the
// cached window, which is the primary space everywhere in this project.
package memorymap

// Area represents the different areas of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case MEM1:
		return "MEM1"
	case MEM2:
		return "MEM2"
	}

	return "undefined"
}

// The banks of main memory in the console.
const (
	Undefined Area = iota
	MEM1
	MEM2
)

// The origin and memory top for each bank, in the cached window. Checking
// which bank an address falls within and forcing the address into the
// normalised range is all handled by the MapAddress() function.
//
// Implementations of the memory banks may need to drag the address down into
// the range of an array. This can be done elegantly with (address^origin)
// rather than subtraction.
const (
	OriginMEM1 = uint32(0x80000000)
	MemtopMEM1 = uint32(0x817fffff)
	OriginMEM2 = uint32(0x90000000)
	MemtopMEM2 = uint32(0x93ffffff)
)

// The size in bytes of each bank of memory.
const (
	SizeMEM1 = MemtopMEM1 - OriginMEM1 + 1
	SizeMEM2 = MemtopMEM2 - OriginMEM2 + 1
)

// UncachedBit is the bit that distinguishes the uncached window from the
// cached window. The uncached mirror of a cached address is the address with
// this bit set.
const UncachedBit = uint32(0x40000000)

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
func MapAddress(address uint32) (uint32, Area) {
	// fold the uncached window onto the cached window
	address &^= UncachedBit

	switch {
	case address >= OriginMEM1 && address <= MemtopMEM1:
		return address, MEM1
	case address >= OriginMEM2 && address <= MemtopMEM2:
		return address, MEM2
	}

	return address, Undefined
}

// Cached returns true if the address is through the cached window. The CPU
// only ever fetches instructions through the cached window.
func Cached(address uint32) bool {
	return address&UncachedBit == 0
}
