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

// Package gameini is a reader for the INI-style files that carry per-title
// game settings. The format is the one found in the wild, which is to say it
// is loose and forgiving:
//
//   - a line of the form [Name] opens a section. lines before the first
//     section are ignored
//   - blank lines and lines beginning with '#' or ';' are comments and are
//     ignored
//   - any other line belongs to the current section and is kept verbatim, in
//     file order
//   - a line containing an '=' additionally registers a key/value pair with
//     the section. a later line with the same key updates the value without
//     changing the key's position
//
// Section lookup is case insensitive. Files never fail to parse; lines that
// do not fit the rules above are simply not recorded.
//
// Settings for a title are conventionally split over two files, a
// distributed default file and a user's local file. The Append() function
// layers one file over another to give the merged view of the two.
package gameini
