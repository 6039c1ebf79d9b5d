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

// Package resources knows where gopherdol keeps its files. All access to
// configuration and other resource files should go through JoinPath(), which
// builds the full path from the correct base directory and creates any
// intermediate directories as a side effect. The named file itself is never
// created or otherwise touched.
//
// The base directory depends on how the binary was built. Builds with the
// "release" build tag root the path in the user's configuration directory. On
// a typical Linux system the full path would be something like:
//
//	/home/user/.config/gopherdol/
//
// Any other build roots the path in the current working directory:
//
//	.gopherdol
//
// Development builds keep the files close to hand this way, while release
// binaries keep them where the end-user expects to find them.
package resources
