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

package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinPath returns the path to a resource file, rooted in the base path for
// the build type. Folders on the way to the file are created as required. The
// file itself is never created or touched, the caller decides what happens
// there.
func JoinPath(path ...string) (string, error) {
	// base path differs between release and development builds
	b, err := resourcePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(path...)

	// the supplied path may be the result of a previous JoinPath in which
	// case the base path is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err != nil {
		if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
			return "", err
		}
	}

	return p, nil
}
