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

package gameini

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// File is the parsed form of a single game settings file, or of several
// layered with Append().
type File struct {
	sections []*Section

	// lookup of lower-cased section name to entry in the sections slice
	lookup map[string]*Section
}

// Section is a named group of lines within a File.
type Section struct {
	name string

	// every non-comment line in the section, in file order
	lines []string

	// keys in first-appearance order, with the corresponding values
	keys []string
	vals map[string]string
}

// NewFile is the preferred method of initialisation for the File type. It is
// only needed when a File is to be built from other files with Append(). Use
// Load() or Parse() otherwise.
func NewFile() *File {
	return &File{
		lookup: make(map[string]*Section),
	}
}

// Load the named game settings file. A file that cannot be opened is the only
// error condition; content never fails to parse.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gameini: %w", err)
	}
	defer f.Close()

	ini, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("gameini: %s: %w", path, err)
	}

	return ini, nil
}

// Parse game settings from an io.Reader.
func Parse(r io.Reader) (*File, error) {
	ini := NewFile()

	var cur *Section

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		// comments and blank lines
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		// section header
		if line[0] == '[' {
			if end := strings.Index(line, "]"); end > 0 {
				cur = ini.section(strings.TrimSpace(line[1:end]))
			}
			continue
		}

		// lines before the first section header are ignored
		if cur == nil {
			continue
		}

		cur.add(line)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return ini, nil
}

// section returns the named section, creating it if necessary.
func (ini *File) section(name string) *Section {
	if s, ok := ini.lookup[strings.ToLower(name)]; ok {
		return s
	}

	s := &Section{
		name: name,
		vals: make(map[string]string),
	}
	ini.sections = append(ini.sections, s)
	ini.lookup[strings.ToLower(name)] = s

	return s
}

// Section returns the named section. The lookup is case insensitive. A name
// that does not appear in the file returns an empty section, not nil, so the
// result is always safe to interrogate.
func (ini *File) Section(name string) *Section {
	if s, ok := ini.lookup[strings.ToLower(name)]; ok {
		return s
	}
	return &Section{name: name, vals: make(map[string]string)}
}

// HasSection returns true if the named section appears in the file.
func (ini *File) HasSection(name string) bool {
	_, ok := ini.lookup[strings.ToLower(name)]
	return ok
}

// Sections returns the section names in file order.
func (ini *File) Sections() []string {
	names := make([]string, 0, len(ini.sections))
	for _, s := range ini.sections {
		names = append(names, s.name)
	}
	return names
}

// Append layers the sections of another file over this one. Lines are
// concatenated in order and keys from the appended file update any existing
// values.
func (ini *File) Append(other *File) {
	for _, o := range other.sections {
		s := ini.section(o.name)
		for _, l := range o.lines {
			s.add(l)
		}
	}
}

// add a raw line to the section, registering a key/value pair if the line
// contains one.
func (s *Section) add(line string) {
	s.lines = append(s.lines, line)

	idx := strings.Index(line, "=")
	if idx < 0 {
		return
	}

	key := strings.TrimSpace(line[:idx])
	if key == "" {
		return
	}

	val := strings.TrimSpace(line[idx+1:])

	// values are sometimes quoted in the wild
	if len(val) >= 2 && strings.HasPrefix(val, "\"") && strings.HasSuffix(val, "\"") {
		val = val[1 : len(val)-1]
	}

	if _, ok := s.vals[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.vals[key] = val
}

// Name of the section as it appeared in the file.
func (s *Section) Name() string {
	return s.name
}

// Lines returns every non-comment line of the section, in file order.
func (s *Section) Lines() []string {
	return s.lines
}

// Keys returns the section's keys in first-appearance order.
func (s *Section) Keys() []string {
	return s.keys
}

// Get the value for a key. The second return value is false if the key does
// not appear in the section.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.vals[key]
	return v, ok
}

// IsEmpty returns true if the section has no lines.
func (s *Section) IsEmpty() bool {
	return len(s.lines) == 0
}
