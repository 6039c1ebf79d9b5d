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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in the
// address space. Useful for reference.
//
// The address space is sampled at 64KB intervals. Every area boundary in the
// console's map is aligned to at least that.
func Summary() string {
	const step = uint32(0x10000)

	describe := func(address uint32) string {
		_, area := MapAddress(address)
		if area == Undefined {
			return area.String()
		}
		if Cached(address) {
			return fmt.Sprintf("%s (cached)", area)
		}
		return fmt.Sprintf("%s (uncached)", area)
	}

	s := strings.Builder{}

	var start uint32
	current := describe(0)

	// the loop condition catches the counter wrapping around to zero after
	// the last 64KB page has been sampled
	for a := step; a != 0; a += step {
		d := describe(a)
		if d != current {
			s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", start, a-1, current))
			current = d
			start = a
		}
	}

	s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", start, uint32(0xffffffff), current))

	return s.String()
}
