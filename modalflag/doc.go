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

// Package modalflag wraps the flag package from the standard library with
// support for program modes. A mode is a command line word that puts the
// program into a different mode of operation, in the manner of the go
// command's build, test, doc, etc. Each mode can have flags and arguments of
// its own.
//
// A Modes instance is given the command line once, with NewArgs(), and is
// then asked to Parse() repeatedly as the program descends into its modes.
// The first call typically registers the available modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("LIST", "CHECK")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// After a successful Parse(), Mode() names the selected mode. Comparison
// with the command line is case insensitive and the first registered mode is
// chosen when the command line names none. The function handling the mode
// calls NewMode(), adds its flags and calls Parse() again to deal with the
// rest of the command line:
//
//	switch md.Mode() {
//	case "LIST":
//		md.NewMode()
//		verbose := md.AddBool("verbose", false, "detailed output")
//		p, err := md.Parse()
//		...
//
// Arguments left over once flags and mode words have been consumed are
// available through RemainingArgs() and GetArg(). A mode function that wants
// exactly one argument:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("game ID required for %s mode", md)
//	case 1:
//		return list(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments for %s mode", md)
//	}
//
// Modes nest as deeply as needed. A mode function can itself register
// sub-modes before its call to Parse(), and the Path() function returns the
// full series of selected modes for use in error and help messages.
//
// Help requests (-help or -h) are recognised during Parse() and reported
// with the ParseHelp result. The help text is written to the Output field,
// which must be set for the text to be seen.
package modalflag
