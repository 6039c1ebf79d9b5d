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
	"github.com/jetsetilly/gopherdol/gameini"
	"github.com/jetsetilly/gopherdol/logger"
)

// the configuration sections read by LoadPatches.
const (
	onFrameSection   = "OnFrame"
	speedhackSection = "Speedhacks"
)

// Settings is the engine's source of per-title configuration. The
// gamesettings package satisfies it.
type Settings interface {
	// DefaultGameIni is the distributable default source
	DefaultGameIni() *gameini.File

	// LocalGameIni is the user's local source. patches are enabled in this
	// source only
	LocalGameIni() *gameini.File

	// GameIni is the merged view, local layered over default
	GameIni() *gameini.File
}

// CodeHandler is a code injection subsystem triggered by the engine once per
// frame. The gecko and action replay interpreters satisfy it. The engine
// sequences calls into a handler but never inspects its state.
type CodeHandler interface {
	// Load the handler's code sets from the two configuration sources
	Load(global *gameini.File, local *gameini.File)

	// Run all active codes. triggered once per frame after patch writes
	Run()

	// Shutdown clears the handler's active code state
	Shutdown()
}

// Engine is the patch engine for one emulation session. It owns the loaded
// patch set and the speed hack table and is the only owner for the session's
// lifetime.
//
// The engine does no locking. LoadPatches, Reload and Shutdown must not
// overlap a call to ApplyFramePatches or GetSpeedhackCycles from another
// goroutine. In normal use everything runs on the emulation goroutine and the
// condition holds trivially.
type Engine struct {
	cpu CPU
	mem Memory
	set Settings
	prf *Preferences

	// the two code handlers. either may be nil
	gecko        CodeHandler
	actionReplay CodeHandler

	patches    []Patch
	speedhacks map[uint32]int
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The engine starts empty. Call LoadPatches to populate it.
//
// prf may be nil, disabling the MusicOff override. Either code handler may
// be nil.
func NewEngine(cpu CPU, mem Memory, set Settings, prf *Preferences, gecko CodeHandler, actionReplay CodeHandler) *Engine {
	return &Engine{
		cpu:          cpu,
		mem:          mem,
		set:          set,
		prf:          prf,
		gecko:        gecko,
		actionReplay: actionReplay,
	}
}

// LoadPatches reads the patch set and the speed hack table from the current
// configuration sources and forwards the sources to the two code handlers.
// Previously loaded state is replaced entirely.
func (eng *Engine) LoadPatches() {
	global := eng.set.DefaultGameIni()
	local := eng.set.LocalGameIni()

	eng.patches = LoadPatchSection(onFrameSection, global, local)
	eng.speedhacks = LoadSpeedhacks(speedhackSection, eng.set.GameIni())

	if eng.gecko != nil {
		eng.gecko.Load(global, local)
	}
	if eng.actionReplay != nil {
		eng.actionReplay.Load(global, local)
	}

	active := 0
	for _, p := range eng.patches {
		if p.Active {
			active++
		}
	}
	logger.Logf(logger.Allow, "patch", "%d patches loaded (%d active), %d speedhacks", len(eng.patches), active, len(eng.speedhacks))
}

// Reload the patch set and speed hack table from the current configuration
// sources. Equivalent to Shutdown followed by LoadPatches.
func (eng *Engine) Reload() {
	eng.Shutdown()
	eng.LoadPatches()
}

// Shutdown clears the patch set and the speed hack table and forwards the
// shutdown to the two code handlers. None of the engine's state survives.
func (eng *Engine) Shutdown() {
	eng.patches = nil
	eng.speedhacks = nil

	if eng.gecko != nil {
		eng.gecko.Shutdown()
	}
	if eng.actionReplay != nil {
		eng.actionReplay.Shutdown()
	}
}

// ApplyFramePatches writes every active patch to memory and then triggers
// the two code handlers, gecko first. Called by the host once per frame from
// the emulation goroutine. It never blocks.
//
// The return value is false if the CPU is not at a safe instant, in which
// case nothing has been written and the caller should try again a little
// later in the frame. A false return is routine, not an error.
func (eng *Engine) ApplyFramePatches() bool {
	// translation checked here as well as by the guard so that a refusal
	// can be logged with the registers that caused it
	msr := eng.cpu.MSR()
	if !translationOn(msr) || !IsStackSane(eng.cpu, eng.mem) {
		logger.Logf(logger.Allow, "patch", "need to retry later. CPU configuration is currently incorrect. PC = 0x%08x, MSR = 0x%08x", eng.cpu.PC(), msr)
		return false
	}

	eng.applyPatches()

	if eng.gecko != nil {
		eng.gecko.Run()
	}
	if eng.actionReplay != nil {
		eng.actionReplay.Run()
	}

	return true
}

// applyPatches performs the writes for every applicable patch, in load order.
// No conflict detection. When entries overlap the last write wins.
func (eng *Engine) applyPatches() {
	for _, p := range eng.patches {
		if !(eng.musicOffOverride(p) || p.Active) {
			continue
		}
		for _, e := range p.Entries {
			switch e.Width {
			case Byte:
				eng.mem.Write8(e.Address, uint8(e.Value))
			case Half:
				eng.mem.Write16(e.Address, uint16(e.Value))
			case Word:
				eng.mem.Write32(e.Address, e.Value)
			}
		}
	}
}

// musicOffOverride reports whether the patch is forced active by the
// MusicOff preference, independently of its Active flag. Only the one
// hardcoded name qualifies. The check has no side effects and is false on
// every non-matching path.
func (eng *Engine) musicOffOverride(p Patch) bool {
	if eng.prf == nil || p.Name != musicOffPatchName {
		return false
	}
	return eng.prf.MusicOff.Get().(bool)
}

// GetSpeedhackCycles returns the cycle count adjustment for the address, or
// zero when the address carries no speed hack. Queried by the host's CPU
// scheduler. The engine itself never consults the table.
func (eng *Engine) GetSpeedhackCycles(address uint32) int {
	return eng.speedhacks[address]
}

// Patches returns the loaded patch set in load order. The returned slice is
// owned by the engine and valid until the next LoadPatches, Reload or
// Shutdown.
func (eng *Engine) Patches() []Patch {
	return eng.patches
}

// Speedhacks returns the loaded speed hack table. The returned map is owned
// by the engine and valid until the next LoadPatches, Reload or Shutdown.
func (eng *Engine) Speedhacks() map[uint32]int {
	return eng.speedhacks
}
