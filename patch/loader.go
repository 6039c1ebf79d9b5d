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
	"strings"

	"github.com/jetsetilly/gopherdol/gameini"
)

// the sigil that starts a patch header line and marks an enabled name.
const sigil = "$"

// EnabledNames returns the patch names marked enabled in the local source, in
// encounter order with duplicates collapsed. Enabled names live in a section
// named after the patch section with an "_Enabled" suffix. The default source
// never carries an enabled list. The name is the remainder of the line after
// the sigil, untrimmed.
func EnabledNames(section string, local *gameini.File) []string {
	if local == nil {
		return nil
	}

	var names []string
	seen := make(map[string]bool)

	for _, line := range local.Section(section + "_Enabled").Lines() {
		name, ok := strings.CutPrefix(line, sigil)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}

// LoadPatchSection reads the named section of the two layered configuration
// sources and returns the patches found, default source patches first and in
// encounter order within each source. Either source may be nil. No
// deduplication is performed across the sources. A patch defined in both
// appears twice.
//
// Malformed lines are dropped silently and a patch left with no entries
// never reaches the returned set. Loading always succeeds with whatever
// subset parsed. The function reads the sources and nothing else. Replacing
// previously loaded state is the caller's business.
func LoadPatchSection(section string, global, local *gameini.File) []Patch {
	enabled := make(map[string]bool)
	for _, name := range EnabledNames(section, local) {
		enabled[name] = true
	}

	var patches []Patch

	for i, ini := range []*gameini.File{global, local} {
		if ini == nil {
			continue
		}
		userDefined := i == 1

		var p Patch
		flush := func() {
			if p.Name != "" && len(p.Entries) > 0 {
				patches = append(patches, p)
			}
		}

		for _, line := range ini.Section(section).Lines() {
			if name, ok := strings.CutPrefix(line, sigil); ok {
				flush()
				p = Patch{
					Name:        name,
					Active:      enabled[name],
					UserDefined: userDefined,
				}
				continue
			}

			if e, ok := ParseEntry(line); ok {
				p.Entries = append(p.Entries, e)
			}
		}
		flush()
	}

	return patches
}

// ParseEntry parses a single patch entry line of the form
//
//	address:width:value
//
// A single '=' in the line is treated as the first ':', allowing the
// "address=width:value" form found in older patch files. Fields beyond the
// third are ignored. Address and value accept decimal, hexadecimal with an
// 0x prefix, and octal with a leading zero. Fields are trimmed of whitespace
// before parsing but the width token itself is matched case-sensitively.
//
// The boolean return value is false if the line has fewer than three fields,
// if address or value do not parse, or if the width token is not recognised.
func ParseEntry(line string) (Entry, bool) {
	line = strings.Replace(line, "=", ":", 1)

	fields := strings.Split(line, ":")
	if len(fields) < 3 {
		return Entry{}, false
	}

	address, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 0, 32)
	if err != nil {
		return Entry{}, false
	}

	width, ok := widths[strings.TrimSpace(fields[1])]
	if !ok {
		return Entry{}, false
	}

	value, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 0, 32)
	if err != nil {
		return Entry{}, false
	}

	return Entry{
		Address: uint32(address),
		Value:   uint32(value),
		Width:   width,
	}, true
}
