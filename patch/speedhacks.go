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

import (
	"strconv"

	"github.com/jetsetilly/gopherdol/gameini"
)

// LoadSpeedhacks reads the named section of the merged configuration view
// into an address to cycle count mapping. Keys are addresses and values are
// cycle counts, both in the integer forms ParseEntry accepts. Pairs that do
// not parse are skipped. When two keys name the same address the last
// successfully parsed value wins.
//
// Cycle counts are read as unsigned and reinterpreted as signed 32 bit
// values, so 0xffffffff loads as -1.
func LoadSpeedhacks(section string, ini *gameini.File) map[uint32]int {
	hacks := make(map[uint32]int)
	if ini == nil {
		return hacks
	}

	sec := ini.Section(section)
	for _, key := range sec.Keys() {
		address, err := strconv.ParseUint(key, 0, 32)
		if err != nil {
			continue
		}

		val, _ := sec.Get(key)
		cycles, err := strconv.ParseUint(val, 0, 32)
		if err != nil {
			continue
		}

		hacks[uint32(address)] = int(int32(cycles))
	}

	return hacks
}
