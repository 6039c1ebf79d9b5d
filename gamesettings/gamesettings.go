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

// Package gamesettings locates and loads the layered per-title configuration
// for a game ID. Two sources are involved, a distributable default file
// shipped with the project and the user's own local file. The local file
// layers over the default one in the merged view.
//
// The Settings type serves the three views of the configuration that the
// patch engine asks for and satisfies the patch.Settings interface.
package gamesettings

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherdol/gameini"
	"github.com/jetsetilly/gopherdol/resources"
)

// the resource directories holding per-title configuration. iniDefaultDir
// holds the distributable defaults and iniLocalDir the user's own files.
const (
	iniDefaultDir = "Sys"
	iniLocalDir   = "GameSettings"
)

// Settings is the per-title configuration for one game ID.
type Settings struct {
	gameID string

	defPath   string
	localPath string

	def    *gameini.File
	local  *gameini.File
	merged *gameini.File
}

// NewSettings is the preferred method of initialisation for the Settings
// type. The default source is read from defDir and the local source from
// localDir, in both cases from a file named "<gameID>.ini". A file that does
// not exist yields an empty source, not an error.
//
// Most callers will prefer Load, which uses the standard resource locations.
func NewSettings(gameID string, defDir string, localDir string) (*Settings, error) {
	if gameID == "" || strings.ContainsAny(gameID, `/\`) {
		return nil, fmt.Errorf("gamesettings: unsuitable game ID: %q", gameID)
	}

	set := &Settings{
		gameID:    gameID,
		defPath:   filepath.Join(defDir, gameID+".ini"),
		localPath: filepath.Join(localDir, gameID+".ini"),
	}

	err := set.Reload()
	if err != nil {
		return nil, err
	}

	return set, nil
}

// Load the configuration for gameID from the standard resource locations.
func Load(gameID string) (*Settings, error) {
	defDir, err := resources.JoinPath(iniDefaultDir, iniLocalDir)
	if err != nil {
		return nil, fmt.Errorf("gamesettings: %w", err)
	}

	localDir, err := resources.JoinPath(iniLocalDir)
	if err != nil {
		return nil, fmt.Errorf("gamesettings: %w", err)
	}

	return NewSettings(gameID, defDir, localDir)
}

// Reload both sources from disk and rebuild the merged view.
func (set *Settings) Reload() error {
	var err error

	set.def, err = loadIni(set.defPath)
	if err != nil {
		return err
	}

	set.local, err = loadIni(set.localPath)
	if err != nil {
		return err
	}

	set.merged = gameini.NewFile()
	set.merged.Append(set.def)
	set.merged.Append(set.local)

	return nil
}

// loadIni reads a single source. missing files are empty sources.
func loadIni(path string) (*gameini.File, error) {
	ini, err := gameini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gameini.NewFile(), nil
		}
		return nil, fmt.Errorf("gamesettings: %w", err)
	}
	return ini, nil
}

// GameID returns the game ID the settings were loaded for.
func (set *Settings) GameID() string {
	return set.gameID
}

// DefaultGameIni returns the distributable default source.
func (set *Settings) DefaultGameIni() *gameini.File {
	return set.def
}

// LocalGameIni returns the user's local source.
func (set *Settings) LocalGameIni() *gameini.File {
	return set.local
}

// GameIni returns the merged view, local layered over default.
func (set *Settings) GameIni() *gameini.File {
	return set.merged
}
