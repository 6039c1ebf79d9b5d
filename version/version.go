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

// Package version records the version number of the project as a whole,
// along with any available vcs information gathered at build time.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Gopherdol"

// number is the version number of a numbered release. it is stamped into the
// binary with the linker's -X flag and is empty for any other kind of build
var number string

// version is the version string reported to the user. for a numbered release
// it equals number. "unreleased" means the binary was built from a vcs
// checkout between releases. "local" means there is no build information at
// all, which is what happens with "go run ."
var version string

// revision is the vcs revision the binary was built from, suffixed with
// "+dirty" if there were uncommitted changes at build time
var revision string

// Version returns the version string, the revision string and whether this
// build is a numbered release. revision information for a numbered release is
// of limited interest
func Version() (string, string, bool) {
	return version, revision, version == number
}

func init() {
	var fromVCS bool

	if info, ok := debug.ReadBuildInfo(); ok {
		var modified bool

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				fromVCS = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}

		if modified && revision != "" {
			revision += "+dirty"
		}
	}

	if revision == "" {
		revision = "no revision information"
	}

	version = number
	if version == "" {
		if fromVCS {
			version = "unreleased"
		} else {
			version = "local"
		}
	}
}
