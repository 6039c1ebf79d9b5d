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

package gekko_test

import (
	"math/rand"
	"testing"

	"github.com/jetsetilly/gopherdol/hardware/gekko"
	"github.com/jetsetilly/gopherdol/test"
)

func TestRegisterFile(t *testing.T) {
	c := gekko.NewCPU()

	for i := 0; i < 100; i++ {
		reg := rand.Intn(gekko.NumGPR)
		val := rand.Uint32()
		c.SetGPR(reg, val)
		test.ExpectEquality(t, c.GPR(reg), val)
	}

	// register numbers outside the register file are benign
	c.SetGPR(-1, 0xffffffff)
	c.SetGPR(gekko.NumGPR, 0xffffffff)
	test.ExpectEquality(t, c.GPR(-1), 0)
	test.ExpectEquality(t, c.GPR(gekko.NumGPR), 0)
}

func TestStackPointerConvention(t *testing.T) {
	c := gekko.NewCPU()
	c.SetSP(0x817ffff0)
	test.ExpectEquality(t, c.GPR(gekko.RegSP), 0x817ffff0)
	test.ExpectEquality(t, c.SP(), 0x817ffff0)
}

func TestReset(t *testing.T) {
	c := gekko.NewCPU()
	c.SetPC(0x80003100)
	c.SetMSR(gekko.MSRBitDR | gekko.MSRBitIR)
	c.SetSP(0x817ffff0)

	c.Reset()
	test.ExpectEquality(t, c.PC(), 0)
	test.ExpectEquality(t, c.MSR(), 0)
	test.ExpectEquality(t, c.SP(), 0)
}
