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

import "fmt"

// Width of a patch entry write, expressed in bits.
type Width int

// The three recognised write widths.
const (
	Byte Width = 8
	Half Width = 16
	Word Width = 32
)

// widths maps the configuration file width token to the Width it denotes.
// The token "word" means a 16 bit write and "dword" a 32 bit write. Tokens
// are matched case-sensitively.
var widths = map[string]Width{
	"byte":  Byte,
	"word":  Half,
	"dword": Word,
}

// String returns the configuration file token for the width.
func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Half:
		return "word"
	case Word:
		return "dword"
	}
	return fmt.Sprintf("Width(%d)", int(w))
}

// Entry is one write against the console's address space. Immutable once
// parsed.
type Entry struct {
	Address uint32
	Value   uint32
	Width   Width
}

func (e Entry) String() string {
	return fmt.Sprintf("0x%08x:%s:0x%x", e.Address, e.Width, e.Value)
}

// Patch is a named group of entries applied together once per frame. A patch
// only ever reaches the loaded set with at least one entry.
type Patch struct {
	Name string

	// Active patches are written by the frame applier. true if and only if
	// the name appears in the enabled list of the local source
	Active bool

	// UserDefined records that the patch came from the local source rather
	// than the default one. provenance only, it plays no part in activation
	UserDefined bool

	Entries []Entry
}

func (p Patch) String() string {
	e := "entries"
	if len(p.Entries) == 1 {
		e = "entry"
	}
	return fmt.Sprintf("%s (%d %s)", p.Name, len(p.Entries), e)
}
