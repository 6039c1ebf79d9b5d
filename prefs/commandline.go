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

package prefs

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// groups of preference values specified on the command line. the most
// recently pushed group is the one consulted by Disk.Load()
var commandLineStack []map[string]Value

// SizeCommandLineStack returns the number of groups currently on the command
// line stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a prefs string and adds the result as a new
// group. The string is a semi-colon separated list of key/value pairs, each
// pair divided by a double colon. For example:
//
//	patch.musicoff::true; patch.example::10
//
// Pairs that do not follow the pattern are silently ignored.
func PushCommandLineStack(prefs string) {
	grp := make(map[string]Value)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			continue
		}
		grp[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	commandLineStack = append(commandLineStack, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the preferences in the group that were never consumed by
// GetCommandLinePref(), in the same format accepted by
// PushCommandLineStack().
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := maps.Keys(popped)
	slices.Sort(keys)

	s := strings.Builder{}
	for _, key := range keys {
		if s.Len() > 0 {
			s.WriteString("; ")
		}
		s.WriteString(fmt.Sprintf("%s::%v", key, popped[key]))
	}

	return s.String()
}

// GetCommandLinePref returns the value for the named preference from the
// current group. The value is deleted from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	grp := commandLineStack[len(commandLineStack)-1]

	v, ok := grp[key]
	if !ok {
		return false, nil
	}
	delete(grp, key)

	return true, v
}
