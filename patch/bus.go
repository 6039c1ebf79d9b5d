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

package patch

// CPU is the view of the console's CPU required by the engine. The hardware
// package satisfies it, as would the live CPU of a host emulator.
type CPU interface {
	// GPR returns the value of the numbered general purpose register. the
	// engine only ever asks for r1, the stack pointer
	GPR(reg int) uint32

	PC() uint32
	MSR() uint32
}

// Memory is the view of the console's address space required by the engine.
// All access is by emulated address. Reads and writes never block and
// complete synchronously.
type Memory interface {
	Read8(address uint32) uint8
	Read16(address uint32) uint16
	Read32(address uint32) uint32

	Write8(address uint32, value uint8)
	Write16(address uint32, value uint16)
	Write32(address uint32, value uint32)

	// IsRAMAddress reports whether the address maps to backed RAM
	IsRAMAddress(address uint32) bool

	// IsInstructionAddress reports whether the CPU could fetch an
	// instruction from the address
	IsInstructionAddress(address uint32) bool
}
