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

package logger

import (
	"io"
	"strings"
)

// pens used by the Colorizer. the dim pen marks the second and subsequent
// lines of a multi-line entry.
const (
	dimPen    = "\033[2;31m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. It should only be
// used when the underlying writer is known to support ANSI control codes.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The returned count covers the
// logging content only and not the color codes.
func (c Colorizer) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSpace(string(p)), "\n")

	for i, l := range lines {
		if i == 1 {
			if _, err = c.out.Write([]byte(dimPen)); err != nil {
				return n, err
			}
			defer func() {
				_, _ = c.out.Write([]byte(normalPen))
			}()
		}

		var m int
		m, err = c.out.Write([]byte(l + "\n"))
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
