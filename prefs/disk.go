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

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the main prefs file.
const DefaultPrefsFile = "gopherdol.prefs"

// WarningBoilerPlate is the first line in a prefs file. A file that does not
// begin with this line will not load.
const WarningBoilerPlate = "*** do not modify this file by hand ***"

// NoPrefsFile is a sentinel error returned by Load() when the prefs file does
// not exist.
var NoPrefsFile = errors.New("prefs file does not exist")

// the string that separates the key from the value in a prefs file.
const keySep = " :: "

// Disk represents preference values that are loaded from and saved to disk.
//
// Multiple Disk instances can share a single prefs file. Saving through one
// instance will not clobber values saved through another.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path is the location of the prefs file. The file does not need to exist, it
// will be created on the first call to Save().
func NewDisk(path string) (*Disk, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("prefs: path is empty")
	}

	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the Disk. The key is how the value is identified
// in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: add: key is empty")
	}
	if strings.Contains(key, keySep) {
		return fmt.Errorf("prefs: add: key contains the separator sequence: %s", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: add: key already added: %s", key)
	}

	dsk.entries[key] = p

	return nil
}

// read the prefs file into a map. entries for keys in the defunct list are
// discarded, meaning they will disappear from the file on the next Save().
func (dsk *Disk) read() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vals, fmt.Errorf("%w: %s", NoPrefsFile, dsk.path)
		}
		return vals, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	// the first line must be the boilerplate warning
	if sc.Scan() {
		if sc.Text() != WarningBoilerPlate {
			return vals, fmt.Errorf("prefs: not a valid prefs file: %s", dsk.path)
		}
	}

	for sc.Scan() {
		s := strings.SplitN(sc.Text(), keySep, 2)
		if len(s) != 2 {
			continue
		}
		if isDefunct(s[0]) {
			continue
		}
		vals[s[0]] = s[1]
	}

	if err := sc.Err(); err != nil {
		return vals, fmt.Errorf("prefs: %w", err)
	}

	return vals, nil
}

// Save current preference values to disk. Keys in the prefs file that have
// not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load any existing values from the prefs file. a missing file is fine
	vals, err := dsk.read()
	if err != nil && !errors.Is(err, NoPrefsFile) {
		return err
	}

	// update with the live values owned by this instance
	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	// sort keys so the written file is stable between saves
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, vals[k]))
	}

	if _, err := io.WriteString(f, s.String()); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. When ignoreMissing is true a missing
// prefs file is not treated as an error, which is the appropriate response
// for the first load of a fresh installation.
//
// Values in the current command line group take precedence over values read
// from the file.
func (dsk *Disk) Load(ignoreMissing bool) error {
	vals, err := dsk.read()
	if err != nil {
		if !(ignoreMissing && errors.Is(err, NoPrefsFile)) {
			return err
		}
		// carry on with no file values. command line values may still apply
	}

	for k, p := range dsk.entries {
		v, ok := vals[k]

		if clOK, clv := GetCommandLinePref(k); clOK {
			v = fmt.Sprintf("%v", clv)
			ok = true
		}

		if !ok {
			continue
		}

		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: load: %w", err)
		}
	}

	return nil
}

// Reset all preference values added to this Disk instance to their zero
// state. The prefs file is not touched.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the live values added to this Disk instance, one key/value
// pair per line.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}
