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

// Package gekko is the register file of the console's PowerPC flavoured CPU.
// The package does not execute instructions. The patch engine only ever
// inspects machine state; execution is the business of the host emulator this
// project works alongside.
package gekko

import "fmt"

// The bits of the machine state register that the patch engine cares about.
// Both refer to address translation. When either bit is clear the CPU is
// addressing physical memory directly, as it does early in boot and during
// exception handling.
const (
	MSRBitDR = uint32(0x010) // data address translation
	MSRBitIR = uint32(0x020) // instruction address translation
)

// BLR is the encoding of the branch-to-link-register instruction, the
// conventional final instruction of a function.
const BLR = uint32(0x4e800020)

// NumGPR is the number of general purpose registers.
const NumGPR = 32

// By convention, r1 holds the stack pointer.
const RegSP = 1

// CPU is the console's CPU as seen by the patch engine.
type CPU struct {
	gpr [NumGPR]uint32
	pc  uint32
	msr uint32
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU() *CPU {
	return &CPU{}
}

// Reset the CPU to its power-on state.
func (c *CPU) Reset() {
	c.gpr = [NumGPR]uint32{}
	c.pc = 0
	c.msr = 0
}

func (c *CPU) String() string {
	return fmt.Sprintf("pc=%08x sp=%08x msr=%08x", c.pc, c.gpr[RegSP], c.msr)
}

// GPR returns the value of a general purpose register. Register numbers
// outside the register file return zero.
func (c *CPU) GPR(reg int) uint32 {
	if reg < 0 || reg >= NumGPR {
		return 0
	}
	return c.gpr[reg]
}

// SetGPR sets the value of a general purpose register. Register numbers
// outside the register file are ignored.
func (c *CPU) SetGPR(reg int, value uint32) {
	if reg < 0 || reg >= NumGPR {
		return
	}
	c.gpr[reg] = value
}

// SP returns the stack pointer, which by convention lives in r1.
func (c *CPU) SP() uint32 {
	return c.gpr[RegSP]
}

// SetSP sets the stack pointer.
func (c *CPU) SetSP(value uint32) {
	c.gpr[RegSP] = value
}

// PC returns the program counter.
func (c *CPU) PC() uint32 {
	return c.pc
}

// SetPC sets the program counter.
func (c *CPU) SetPC(value uint32) {
	c.pc = value
}

// MSR returns the machine state register.
func (c *CPU) MSR() uint32 {
	return c.msr
}

// SetMSR sets the machine state register.
func (c *CPU) SetMSR(value uint32) {
	c.msr = value
}
