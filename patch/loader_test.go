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

package patch_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdol/gameini"
	"github.com/jetsetilly/gopherdol/patch"
	"github.com/jetsetilly/gopherdol/test"
)

func parseIni(t *testing.T, src string) *gameini.File {
	t.Helper()
	ini, err := gameini.Parse(strings.NewReader(src))
	test.DemandSuccess(t, err)
	return ini
}

func TestParseEntry(t *testing.T) {
	e, ok := patch.ParseEntry("0x80001000:dword:0x60000000")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Address, 0x80001000)
	test.ExpectEquality(t, e.Value, 0x60000000)
	test.ExpectEquality(t, e.Width, patch.Word)

	// "word" is a 16 bit write and "byte" an 8 bit write
	e, ok = patch.ParseEntry("1000:word:5")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Address, 1000)
	test.ExpectEquality(t, e.Value, 5)
	test.ExpectEquality(t, e.Width, patch.Half)

	e, ok = patch.ParseEntry("0x80001003:byte:0xff")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Width, patch.Byte)

	// a single '=' stands in for the first ':'
	e, ok = patch.ParseEntry("0x80001000=dword:7")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Value, 7)

	// fields are trimmed before parsing
	e, ok = patch.ParseEntry("0x80001000 : dword : 0x1234")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Value, 0x1234)

	// leading zero means octal
	e, ok = patch.ParseEntry("010:dword:017")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Address, 8)
	test.ExpectEquality(t, e.Value, 15)

	// fields beyond the third are ignored
	e, ok = patch.ParseEntry("0x80001000:dword:9:junk")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Value, 9)
}

func TestParseEntryMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"0x80001000",
		"0x80001000:dword",
		"0x80001000=dword=7",
		"0x80001000:qword:7",
		"0x80001000:DWORD:7",
		"0x80001000:wo rd:7",
		"notanaddress:dword:7",
		"0x80001000:dword:notavalue",
		"0x180000000:dword:7",
		"0x80001000:dword:0x100000000",
	} {
		_, ok := patch.ParseEntry(line)
		test.ExpectFailure(t, ok, line)
	}
}

func TestLoadPatchSection(t *testing.T) {
	global := parseIni(t, `
[OnFrame]
$Wide Screen
0x80003f50:dword:0x60000000
$Skip Intro
0x80001000:word:0x4800
`)
	local := parseIni(t, `
[OnFrame]
$My Fix
0x90000000:byte:0x01
[OnFrame_Enabled]
$Skip Intro
$My Fix
`)

	patches := patch.LoadPatchSection("OnFrame", global, local)
	test.DemandEquality(t, len(patches), 3)

	// default source patches come first and are never auto-active
	test.ExpectEquality(t, patches[0].Name, "Wide Screen")
	test.ExpectFailure(t, patches[0].Active)
	test.ExpectFailure(t, patches[0].UserDefined)

	test.ExpectEquality(t, patches[1].Name, "Skip Intro")
	test.ExpectSuccess(t, patches[1].Active)
	test.ExpectFailure(t, patches[1].UserDefined)

	test.ExpectEquality(t, patches[2].Name, "My Fix")
	test.ExpectSuccess(t, patches[2].Active)
	test.ExpectSuccess(t, patches[2].UserDefined)
	test.DemandEquality(t, len(patches[2].Entries), 1)
	test.ExpectEquality(t, patches[2].Entries[0], patch.Entry{Address: 0x90000000, Value: 0x01, Width: patch.Byte})
}

func TestZeroEntryPatchesAreDiscarded(t *testing.T) {
	global := parseIni(t, `
[OnFrame]
$Empty
$Unsupported
2000:qword:7
$Real
0x80001000:byte:1
`)
	patches := patch.LoadPatchSection("OnFrame", global, nil)
	test.DemandEquality(t, len(patches), 1)
	test.ExpectEquality(t, patches[0].Name, "Real")

	// a trailing patch with no entries is discarded too
	patches = patch.LoadPatchSection("OnFrame", parseIni(t, "[OnFrame]\n$Trailing\n"), nil)
	test.ExpectEquality(t, len(patches), 0)
}

func TestEntriesBeforeFirstHeader(t *testing.T) {
	global := parseIni(t, `
[OnFrame]
0x80001000:dword:1
$Real
0x80002000:dword:2
`)
	patches := patch.LoadPatchSection("OnFrame", global, nil)
	test.DemandEquality(t, len(patches), 1)
	test.DemandEquality(t, len(patches[0].Entries), 1)
	test.ExpectEquality(t, patches[0].Entries[0].Address, 0x80002000)
}

func TestMalformedEntryDropsOnlyItself(t *testing.T) {
	global := parseIni(t, `
[OnFrame]
$Mixed
0x80001000:dword:1
0x80001004:qword:2
0x80001008:dword:3
`)
	patches := patch.LoadPatchSection("OnFrame", global, nil)
	test.DemandEquality(t, len(patches), 1)
	test.DemandEquality(t, len(patches[0].Entries), 2)
	test.ExpectEquality(t, patches[0].Entries[0].Address, 0x80001000)
	test.ExpectEquality(t, patches[0].Entries[1].Address, 0x80001008)
}

func TestPatchInBothSources(t *testing.T) {
	global := parseIni(t, "[OnFrame]\n$FixA\n1000:dword:5\n")
	local := parseIni(t, "[OnFrame]\n$FixA\n1000:dword:5\n[OnFrame_Enabled]\n$FixA\n")

	patches := patch.LoadPatchSection("OnFrame", global, local)

	// no deduplication across sources. both copies load and both are active
	test.DemandEquality(t, len(patches), 2)
	for i, p := range patches {
		test.ExpectEquality(t, p.Name, "FixA", i)
		test.ExpectSuccess(t, p.Active, i)
		test.DemandEquality(t, len(p.Entries), 1, i)
		test.ExpectEquality(t, p.Entries[0], patch.Entry{Address: 1000, Value: 5, Width: patch.Word}, i)
	}
	test.ExpectFailure(t, patches[0].UserDefined)
	test.ExpectSuccess(t, patches[1].UserDefined)
}

func TestDefaultSourceNeverEnables(t *testing.T) {
	// an enabled list in the default source has no effect
	global := parseIni(t, "[OnFrame]\n$FixA\n1000:dword:5\n[OnFrame_Enabled]\n$FixA\n")
	patches := patch.LoadPatchSection("OnFrame", global, nil)
	test.DemandEquality(t, len(patches), 1)
	test.ExpectFailure(t, patches[0].Active)
}

func TestEnabledNames(t *testing.T) {
	local := parseIni(t, `
[OnFrame_Enabled]
$Skip Intro
$Wide Screen
$Skip Intro
not an enabled line
`)
	names := patch.EnabledNames("OnFrame", local)
	test.ExpectEquality(t, strings.Join(names, ","), "Skip Intro,Wide Screen")

	test.ExpectEquality(t, len(patch.EnabledNames("OnFrame", nil)), 0)
}
