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
	"fmt"
	"os"
	"testing"

	"github.com/jetsetilly/gopherdol/prefs"
	"github.com/jetsetilly/gopherdol/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// the stack starts empty
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// one key/value pair
	prefs.PushCommandLineStack("patch.musicoff::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "patch.musicoff::true")

	// whitespace around the key and the value is not significant
	prefs.PushCommandLineStack("   patch.musicoff:: true ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "patch.musicoff::true")

	// multiple pairs. PopCommandLineStack() reports the remaining pairs in
	// sorted order
	prefs.PushCommandLineStack("tv.lines::312; cpu.cycles::240")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.cycles::240; tv.lines::312")

	// a string without the :: separator is not a valid pair
	prefs.PushCommandLineStack("musicoff")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// invalid pairs are dropped but valid pairs in the same group survive
	prefs.PushCommandLineStack("musicoff;cpu.cycles::240")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.cycles::240")

	// a key that only appeared in an invalid pair is not found
	prefs.PushCommandLineStack("patch.musicoff::true;cycles_240")
	ok, _ := prefs.GetCommandLinePref("cycles")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "patch.musicoff::true")
}

func TestCommandLineStack(t *testing.T) {
	// the stack starts empty
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("patch.musicoff::true")

	// a second group sits on top of the first
	prefs.PushCommandLineStack("cpu.cycles::240")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.cycles::240")

	// popping the second group reveals the first
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "patch.musicoff::true")
}

// values in the current command line group override values read from the
// prefs file. consumed values are removed from the group and will not be
// reported by PopCommandLineStack()
func TestCommandLineOverridesDisk(t *testing.T) {
	fn := tmpPrefsFile(t)

	data := fmt.Sprintf("%s\npatch.musicoff :: false\n", prefs.WarningBoilerPlate)
	err := os.WriteFile(fn, []byte(data), 0600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("patch.musicoff", &v)
	test.ExpectSuccess(t, err)

	prefs.PushCommandLineStack("patch.musicoff::true; unused::1")

	err = dsk.Load(false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Get().(bool), true)

	// the consumed value has been deleted from the group. the unused value
	// remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
}

// a command line value applies even when the prefs file does not exist
func TestCommandLineWithoutDisk(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	err = dsk.Add("patch.musicoff", &v)
	test.ExpectSuccess(t, err)

	prefs.PushCommandLineStack("patch.musicoff::true")

	err = dsk.Load(true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
