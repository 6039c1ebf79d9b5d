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

package patch

import (
	"fmt"

	"github.com/jetsetilly/gopherdol/logger"
	"github.com/jetsetilly/gopherdol/prefs"
	"github.com/jetsetilly/gopherdol/resources"
)

// the one patch name subject to the MusicOff override.
const musicOffPatchName = "[P+] Music Off"

// Preferences defines and collates the preference values used by the patch
// engine.
type Preferences struct {
	dsk *prefs.Disk

	// MusicOff forces the patch named "[P+] Music Off" to be applied whether
	// or not it is enabled in the local configuration. a retrofitted switch
	// for one legacy patch, not a general mechanism
	MusicOff prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	// record changes to the override in the log. the value can change at any
	// time the preferences file is reloaded
	p.MusicOff.SetHookPost(func(v prefs.Value) error {
		logger.Logf(logger.Allow, "patch", "music off override: %v", v.(bool))
		return nil
	})

	// setup preferences and load from disk
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("patch preferences: %w", err)
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("patch preferences: %w", err)
	}
	err = p.dsk.Add("patch.musicoff", &p.MusicOff)
	if err != nil {
		return nil, fmt.Errorf("patch preferences: %w", err)
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, fmt.Errorf("patch preferences: %w", err)
	}

	return p, nil
}

// Reset all patch engine preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current patch engine preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current patch engine preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
