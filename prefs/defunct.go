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

package prefs

import "golang.org/x/exp/slices"

// list of preference keys that are no longer used.
var defunct = []string{
	// early name for patch.musicoff, from before the override was
	// generalised
	"patch.brawlmusicoff",
}

// returns true if string is in list of defunct values.
func isDefunct(s string) bool {
	return slices.Contains(defunct, s)
}
