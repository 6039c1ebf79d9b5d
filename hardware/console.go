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

package hardware

import (
	"github.com/jetsetilly/gopherdol/hardware/gekko"
	"github.com/jetsetilly/gopherdol/hardware/memory"
)

// Machine state established by Reset(). The stack follows the PowerPC EABI
// convention: the word at the stack pointer is the back chain to the caller's
// frame and the word above the back chain is the saved link register.
const (
	resetPC    = uint32(0x80003154)
	resetSP    = uint32(0x817ffe90)
	callerSP   = uint32(0x817fffe0)
	resetLR    = uint32(0x80004224)
	endOfChain = uint32(0x817ffff8)
)

// Console is the main container for the emulated components of the console.
type Console struct {
	CPU *gekko.CPU
	Mem *memory.Memory
}

// NewConsole is the preferred method of initialisation for the Console type.
// The returned console is in its reset state.
func NewConsole() *Console {
	con := &Console{
		CPU: gekko.NewCPU(),
		Mem: memory.NewMemory(),
	}
	con.Reset()
	return con
}

// Reset the console to the state of a machine that has booted and is running
// game code. Address translation is on and the stack pointer sits near the
// top of MEM1 with a walkable frame chain beneath it.
func (con *Console) Reset() {
	con.CPU.Reset()
	con.Mem.Reset()

	con.CPU.SetMSR(gekko.MSRBitDR | gekko.MSRBitIR)
	con.CPU.SetPC(resetPC)
	con.CPU.SetSP(resetSP)

	// two stack frames. the back chain of the topmost frame ends the walk
	con.Mem.Write32(resetSP, callerSP)
	con.Mem.Write32(callerSP, endOfChain)
	con.Mem.Write32(callerSP+4, resetLR)

	// the return address points into the body of a function
	con.Mem.Write32(resetLR, gekko.BLR)
}
