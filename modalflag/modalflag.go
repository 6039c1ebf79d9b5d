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

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

const modeSeparator = "/"

// Modes parses a command line that divides into sub-modes, each sub-mode
// having flags and arguments of its own.
//
// The Output field must be set before the first call to Parse() or help
// messages will be lost. os.Stdout is the usual choice.
type Modes struct {
	Output io.Writer

	// the full command line as given to NewArgs() and the index of the
	// first argument not yet consumed by a sub-mode word
	cmdline []string
	depth   int

	// the flagset for the current mode. replaced on every call to NewMode()
	fs *flag.FlagSet

	// the sub-modes available to the current mode, uppercased. the first
	// entry acts as the default
	avail []string

	// the sub-modes selected by previous calls to Parse(), in order
	selected []string
}

func (md *Modes) String() string {
	return md.Path()
}

// Path returns the series of sub-modes selected so far, separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.selected, modeSeparator)
}

// Mode returns the most recently selected sub-mode.
func (md *Modes) Mode() string {
	if len(md.selected) == 0 {
		return ""
	}
	return md.selected[len(md.selected)-1]
}

// NewArgs begins the parsing of a new command line.
func (md *Modes) NewArgs(args []string) {
	md.cmdline = args
	md.depth = 0
	md.selected = md.selected[:0]
	md.NewMode()
}

// NewMode prepares the Modes instance for the flags and arguments of the
// next sub-mode. A sub-mode function will call this before adding its own
// flags.
func (md *Modes) NewMode() {
	md.fs = flag.NewFlagSet("", flag.ContinueOnError)
	md.avail = md.avail[:0]
}

// AddSubModes makes the listed sub-modes available to the next call of
// Parse(). The first in the list acts as the default when the command line
// names no sub-mode. Comparison with the command line is case insensitive.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.avail = append(md.avail, strings.ToUpper(m))
	}
}

// ParseResult describes the outcome of a call to Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded and the program should carry on. if sub-modes were
	// added then Mode() names the one to run
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the command line could not be parsed. the error is returned alongside
	ParseError
)

// Parse the arguments not yet consumed by an earlier sub-mode. Help requests
// are written to Output and indicated with ParseHelp. The idiomatic usage:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		printError(err)
//		return
//	}
//
// Note that a sub-mode word must come before the flags for that sub-mode.
func (md *Modes) Parse() (ParseResult, error) {
	usage := &usageBuffer{}
	md.fs.SetOutput(usage)

	err := md.fs.Parse(md.cmdline[md.depth:])

	if err == flag.ErrHelp {
		usage.report(md.Output, md.Path(), md.avail)
		return ParseHelp, nil
	}

	if err != nil {
		// an unrecognised flag. when sub-modes are available the default
		// sub-mode deals with the command line instead
		if len(md.avail) == 0 {
			return ParseError, err
		}
		md.selected = append(md.selected, md.avail[0])
		return ParseContinue, nil
	}

	if len(md.avail) > 0 {
		mode := md.avail[0]
		if arg := strings.ToUpper(md.fs.Arg(0)); slices.Contains(md.avail, arg) {
			mode = arg
			md.depth++
		}
		md.selected = append(md.selected, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after a call to Parse().
// Flags and the selected sub-mode word are not included.
func (md *Modes) RemainingArgs() []string {
	return md.fs.Args()
}

// GetArg returns the numbered remaining argument. The empty string is
// returned if the argument does not exist.
func (md *Modes) GetArg(i int) string {
	return md.fs.Arg(i)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.fs.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.fs.String(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.fs.Duration(name, value, usage)
}
