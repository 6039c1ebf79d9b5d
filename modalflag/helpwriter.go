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
	"fmt"
	"io"
	"strings"
)

// usageBuffer captures the output of the flag package so that it can be
// reshaped before being shown to the user.
type usageBuffer struct {
	b []byte
}

// Write implements the io.Writer interface.
func (u *usageBuffer) Write(p []byte) (n int, err error) {
	u.b = append(u.b, p...)
	return len(p), nil
}

// report writes the buffered usage information to output, adding the mode
// path to the banner line and a summary of the available sub-modes.
func (u *usageBuffer) report(output io.Writer, path string, avail []string) {
	lines := strings.Split(string(u.b), "\n")

	// the flag package emits the bare banner when no flags are defined
	if len(avail) == 0 && string(u.b) == "Usage:\n" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintf(output, "%s\n", lines[0])
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], path)
	}

	// the flag information as formatted by the flag package
	if len(lines) > 1 {
		io.WriteString(output, strings.Join(lines[1:], "\n"))
	}

	if len(avail) > 0 {
		// a separating line between the flag information and the sub-mode
		// summary
		if len(lines) > 2 {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(avail, ", "))
		fmt.Fprintf(output, "    default: %s\n", avail[0])
	}
}
