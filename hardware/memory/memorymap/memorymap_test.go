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
	"github.com/jetsetilly/gopherdol/test"
)

func TestMapAddress(t *testing.T) {
	// cached window addresses map to themselves
	ma, area := memorymap.MapAddress(0x80001234)
	test.ExpectEquality(t, ma, 0x80001234)
	test.ExpectEquality(t, area, memorymap.MEM1)

	ma, area = memorymap.MapAddress(0x90400000)
	test.ExpectEquality(t, ma, 0x90400000)
	test.ExpectEquality(t, area, memorymap.MEM2)

	// uncached window addresses fold onto the cached window
	ma, area = memorymap.MapAddress(0xc0001234)
	test.ExpectEquality(t, ma, 0x80001234)
	test.ExpectEquality(t, area, memorymap.MEM1)

	ma, area = memorymap.MapAddress(0xd0400000)
	test.ExpectEquality(t, ma, 0x90400000)
	test.ExpectEquality(t, area, memorymap.MEM2)

	// the very top and bottom of each bank
	_, area = memorymap.MapAddress(memorymap.OriginMEM1)
	test.ExpectEquality(t, area, memorymap.MEM1)
	_, area = memorymap.MapAddress(memorymap.MemtopMEM1)
	test.ExpectEquality(t, area, memorymap.MEM1)
	_, area = memorymap.MapAddress(memorymap.MemtopMEM1+1)
	test.ExpectEquality(t, area, memorymap.Undefined)
	_, area = memorymap.MapAddress(memorymap.MemtopMEM2+1)
	test.ExpectEquality(t, area, memorymap.Undefined)

	// addresses outside any window
	_, area = memorymap.MapAddress(0x00001234)
	test.ExpectEquality(t, area, memorymap.Undefined)
	_, area = memorymap.MapAddress(0xe0000000)
	test.ExpectEquality(t, area, memorymap.Undefined)
}

func TestCached(t *testing.T) {
	test.ExpectSuccess(t, memorymap.Cached(0x80001234))
	test.ExpectSuccess(t, memorymap.Cached(0x90001234))
	test.ExpectFailure(t, memorymap.Cached(0xc0001234))
	test.ExpectFailure(t, memorymap.Cached(0xd0001234))
}
