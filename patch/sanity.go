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

// the MSR bits for data and instruction address translation. both must be on
// before patching is considered.
const (
	msrDR = uint32(0x010)
	msrIR = uint32(0x020)
)

// translationOn reports whether both address translation bits are set in the
// MSR value.
func translationOn(msr uint32) bool {
	return msr&(msrDR|msrIR) == msrDR|msrIR
}

// IsStackSane judges whether the CPU is at an instant where writing to the
// address space is safe. The per-frame hook that drives the engine fires from
// a periodic interrupt and can catch the CPU inside an exception vector with
// a partially unwound stack. Writing at such an instant risks corrupting in
// flight state, so the frame applier holds off until this function is
// satisfied.
//
// The judgement is a heuristic and a false result is an expected, retried
// condition. It asks for address translation to be on and for the stack to
// show two coherent frames: the back chain word at the stack pointer must
// nest upward to a second frame in RAM, and the return address saved beside
// that frame must point at a non-zero instruction word. Shallow stacks can
// fail the two frame requirement even at a perfectly safe instant. That is a
// known limitation of the shape of the check.
func IsStackSane(cpu CPU, mem Memory) bool {
	if !translationOn(cpu.MSR()) {
		return false
	}

	// r1 is the stack pointer by convention
	sp := cpu.GPR(1)
	if !mem.IsRAMAddress(sp) {
		return false
	}

	// the word at the stack pointer is the back chain to the second frame.
	// frames nest upward
	next := mem.Read32(sp)
	if next <= sp || !mem.IsRAMAddress(next) || !mem.IsRAMAddress(next+4) {
		return false
	}

	// the word above the second frame's back chain is a saved return
	// address. it must point at a real instruction
	ret := mem.Read32(next + 4)
	return mem.IsInstructionAddress(ret) && mem.Read32(ret) != 0
}
