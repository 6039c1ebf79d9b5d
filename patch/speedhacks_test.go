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

package patch_test

import (
	"testing"

	"github.com/jetsetilly/gopherdol/patch"
	"github.com/jetsetilly/gopherdol/test"
)

func TestLoadSpeedhacks(t *testing.T) {
	ini := parseIni(t, `
[Speedhacks]
0x80001000=200
0x802453ac=400
badaddress=100
0x80002000=notanumber
`)
	hacks := patch.LoadSpeedhacks("Speedhacks", ini)
	test.ExpectEquality(t, len(hacks), 2)
	test.ExpectEquality(t, hacks[0x80001000], 200)
	test.ExpectEquality(t, hacks[0x802453ac], 400)

	// absent addresses read as zero
	test.ExpectEquality(t, hacks[0xdeadbeef], 0)
}

func TestSpeedhackLastValueWins(t *testing.T) {
	// two spellings of the same address. the later pair wins
	ini := parseIni(t, `
[Speedhacks]
0x80001000=200
2147487744=999
`)
	hacks := patch.LoadSpeedhacks("Speedhacks", ini)
	test.ExpectEquality(t, len(hacks), 1)
	test.ExpectEquality(t, hacks[0x80001000], 999)
}

func TestSpeedhackSignedCycles(t *testing.T) {
	ini := parseIni(t, "[Speedhacks]\n0x80001000=0xffffffff\n")
	hacks := patch.LoadSpeedhacks("Speedhacks", ini)
	test.ExpectEquality(t, hacks[0x80001000], -1)
}

func TestSpeedhacksNilSource(t *testing.T) {
	hacks := patch.LoadSpeedhacks("Speedhacks", nil)
	test.ExpectEquality(t, len(hacks), 0)
}
