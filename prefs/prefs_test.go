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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdol/prefs"
	"github.com/jetsetilly/gopherdol/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gopherdol_prefs_test")
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if string(data) != expected {
		t.Errorf("prefs file does not contain the expected data\nexpected:\n%s\nin file:\n%s", expected, string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("patch.musicoff", &v)
	test.ExpectSuccess(t, err)
	err = dsk.Add("patch.strict", &w)
	test.ExpectSuccess(t, err)
	err = dsk.Add("patch.verbose", &x)
	test.ExpectSuccess(t, err)

	err = v.Set(true)
	test.ExpectSuccess(t, err)

	// strings other than "true" mean false
	err = w.Set("yes")
	test.ExpectSuccess(t, err)

	// and the "true" comparison is case insensitive
	err = x.Set("TRUE")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpPrefsFile(t, fn, "patch.musicoff :: true\npatch.strict :: false\npatch.verbose :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	err = dsk.Add("ui.font", &v)
	test.ExpectSuccess(t, err)

	err = v.Set("mono")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpPrefsFile(t, fn, "ui.font :: mono\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	err = dsk.Add("cpu.cycles", &v)
	test.ExpectSuccess(t, err)
	err = dsk.Add("tv.lines", &w)
	test.ExpectSuccess(t, err)

	err = v.Set(240)
	test.ExpectSuccess(t, err)

	// strings are converted when they can be
	err = w.Set("312")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpPrefsFile(t, fn, "cpu.cycles :: 240\ntv.lines :: 312\n")

	// conversion failures leave the stored value alone
	err = v.Set("twelve")
	test.ExpectFailure(t, err)

	err = v.Set(2.5)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, v.Get().(int), 240)
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	// a Generic prefs value composed of two live values
	var origin, memtop uint32

	v := prefs.NewGeneric(
		func(v prefs.Value) error {
			_, err := fmt.Sscanf(v.(string), "%x/%x", &origin, &memtop)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%08x/%08x", origin, memtop)
		},
	)

	err = dsk.Add("mem.window", v)
	test.ExpectSuccess(t, err)

	origin = 0x80000000
	memtop = 0x817fffff

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpPrefsFile(t, fn, "mem.window :: 80000000/817fffff\n")

	// zero the live values and reload them from the file
	origin = 0
	memtop = 0

	err = dsk.Load(false)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, origin, 0x80000000)
	test.ExpectEquality(t, memtop, 0x817fffff)
}

// two Disk instances sharing the one file. the second Save() must preserve
// the keys written by the first instance
func TestSharedPrefsFile(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("patch.musicoff", &v)
	test.ExpectSuccess(t, err)

	err = v.Set(true)
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	test.DemandSuccess(t, err)

	// the second instance knows nothing about the bool value saved above
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	err = dsk.Add("ui.font", &s)
	test.ExpectSuccess(t, err)

	err = s.Set("mono")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpPrefsFile(t, fn, "patch.musicoff :: true\nui.font :: mono\n")
}

func TestMaxStringLength(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	err = dsk.Add("game.id", &s)
	test.ExpectSuccess(t, err)
	err = s.Set("GALE01r2")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "GALE01r2")

	// setting a maximum length crops the stored string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "GALE0")

	// removing the limit does not bring the cropped information back
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "GALE0")

	// values set while a limit is in place are cropped on the way in
	s.SetMaxLen(3)
	err = s.Set("RSBE01")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "RSB")
}

// a missing prefs file is an error unless the ignoreMissing argument to
// Load() is set
func TestMissingPrefsFile(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("patch.musicoff", &v)
	test.ExpectSuccess(t, err)

	err = dsk.Load(false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, prefs.NoPrefsFile))

	err = dsk.Load(true)
	test.ExpectSuccess(t, err)
}

// keys in the defunct list are dropped when the file is next saved
func TestDefunctKeys(t *testing.T) {
	fn := tmpPrefsFile(t)

	data := fmt.Sprintf("%s\npatch.brawlmusicoff :: true\npatch.musicoff :: true\n", prefs.WarningBoilerPlate)
	err := os.WriteFile(fn, []byte(data), 0600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("patch.musicoff", &v)
	test.ExpectSuccess(t, err)

	err = dsk.Load(false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Get().(bool), true)

	err = dsk.Save()
	test.DemandSuccess(t, err)

	cmpPrefsFile(t, fn, "patch.musicoff :: true\n")
}

// hooks fire around every call to Set(). an error from the pre hook abandons
// the update
func TestHooks(t *testing.T) {
	var v prefs.Bool

	var pre, post int
	v.SetHookPre(func(_ prefs.Value) error {
		pre++
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post++
		test.ExpectEquality(t, value.(bool), true)
		return nil
	})

	err := v.Set(true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pre, 1)
	test.ExpectEquality(t, post, 1)

	// an error from the pre hook means the stored value does not change
	v.SetHookPre(func(_ prefs.Value) error {
		return errors.New("value is locked")
	})
	err = v.Set(false)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, post, 1)
}
