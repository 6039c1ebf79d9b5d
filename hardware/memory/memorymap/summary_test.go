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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherdol/hardware/memory/memorymap"
)

const validMemMap = `00000000 -> 7fffffff	undefined
80000000 -> 817fffff	MEM1 (cached)
81800000 -> 8fffffff	undefined
90000000 -> 93ffffff	MEM2 (cached)
94000000 -> bfffffff	undefined
c0000000 -> c17fffff	MEM1 (uncached)
c1800000 -> cfffffff	undefined
d0000000 -> d3ffffff	MEM2 (uncached)
d4000000 -> ffffffff	undefined
`

func TestSummary(t *testing.T) {
	if memorymap.Summary() != validMemMap {
		t.Fatalf("memory map is invalid")
	}
}
