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

package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/jetsetilly/gopherdol/gameini"
	"github.com/jetsetilly/gopherdol/gamesettings"
	"github.com/jetsetilly/gopherdol/hardware"
	"github.com/jetsetilly/gopherdol/logger"
	"github.com/jetsetilly/gopherdol/modalflag"
	"github.com/jetsetilly/gopherdol/patch"
	"github.com/jetsetilly/gopherdol/performance"
	"github.com/jetsetilly/gopherdol/prefs"
	"github.com/jetsetilly/gopherdol/statsview"
	"github.com/jetsetilly/gopherdol/version"
)

// the patch section every mode works with.
const patchSection = "OnFrame"

func main() {
	// launch statsview if available (built with the statsview tag)
	if statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("LIST", "CHECK", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "LIST":
		err = list(md)
	case "CHECK":
		err = check(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// reportUnusedPrefs pops the command line preferences group and notes any
// values that no preference loader asked for. probably typos.
func reportUnusedPrefs() {
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}
}

// setEcho directs the debugging log to stdout, colorized when stdout is a
// terminal.
func setEcho(echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(os.Stdout, false)
	}
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	activeOnly := md.AddBool("active", false, "list active patches only")
	memvizFile := md.AddString("memviz", "", "write patch table graph to file (graphviz dot format)")
	overrides := md.AddString("prefs", "", "preference values for this run (key::value; ...)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	if *overrides != "" {
		prefs.PushCommandLineStack(*overrides)
		defer reportUnusedPrefs()
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("game ID required for %s mode", md)
	case 1:
		set, err := gamesettings.Load(md.GetArg(0))
		if err != nil {
			return err
		}

		prf, err := patch.NewPreferences()
		if err != nil {
			return err
		}

		con := hardware.NewConsole()
		eng := patch.NewEngine(con.CPU, con.Mem, set, prf, nil, nil)
		eng.LoadPatches()

		for _, pt := range eng.Patches() {
			if *activeOnly && !pt.Active {
				continue
			}

			flags := make([]string, 0, 2)
			if pt.Active {
				flags = append(flags, "active")
			}
			if pt.UserDefined {
				flags = append(flags, "user")
			} else {
				flags = append(flags, "default")
			}

			fmt.Fprintf(md.Output, "%s [%s]\n", pt.Name, strings.Join(flags, ", "))
			for _, e := range pt.Entries {
				fmt.Fprintf(md.Output, "  %s\n", e)
			}
		}

		hacks := eng.Speedhacks()
		if len(hacks) > 0 {
			fmt.Fprintln(md.Output, "speedhacks:")
			addresses := maps.Keys(hacks)
			slices.Sort(addresses)
			for _, a := range addresses {
				fmt.Fprintf(md.Output, "  0x%08x = %d cycles\n", a, hacks[a])
			}
		}

		if *memvizFile != "" {
			patches := eng.Patches()
			var b bytes.Buffer
			memviz.Map(&b, &patches)
			err = os.WriteFile(*memvizFile, b.Bytes(), 0644)
			if err != nil {
				return fmt.Errorf("memviz: %w", err)
			}
			fmt.Fprintf(md.Output, "patch table graph written to %s\n", *memvizFile)
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func check(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("game ID required for %s mode", md)
	case 1:
		set, err := gamesettings.Load(md.GetArg(0))
		if err != nil {
			return err
		}

		patches := patch.LoadPatchSection(patchSection, set.DefaultGameIni(), set.LocalGameIni())

		checkSource(md, "default", set.DefaultGameIni(), patches, false)
		checkSource(md, "local", set.LocalGameIni(), patches, true)

		// enabled names that match no loaded patch are probably typos
		for _, name := range patch.EnabledNames(patchSection, set.LocalGameIni()) {
			if !slices.ContainsFunc(patches, func(pt patch.Patch) bool { return pt.Name == name }) {
				fmt.Fprintf(md.Output, "enabled name with no loaded patch: %s\n", name)
			}
		}

		// speed hack pairs the loader will not accept
		sec := set.GameIni().Section("Speedhacks")
		for _, key := range sec.Keys() {
			val, _ := sec.Get(key)
			if !parseableAddress(key) || !parseableAddress(val) {
				fmt.Fprintf(md.Output, "dropped speedhack pair: %s = %s\n", key, val)
			}
		}

		hacks := patch.LoadSpeedhacks("Speedhacks", set.GameIni())

		active := 0
		for _, pt := range patches {
			if pt.Active {
				active++
			}
		}
		fmt.Fprintf(md.Output, "%d patches loaded (%d active), %d speedhacks\n", len(patches), active, len(hacks))

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// checkSource reports the load results for one configuration source: header
// and entry counts, and the lines the permissive parser drops.
func checkSource(md *modalflag.Modes, label string, src *gameini.File, patches []patch.Patch, userDefined bool) {
	headers := 0
	dropped := []string{}

	for _, line := range src.Section(patchSection).Lines() {
		if strings.HasPrefix(line, "$") {
			headers++
			continue
		}
		if _, ok := patch.ParseEntry(line); !ok {
			dropped = append(dropped, line)
		}
	}

	loaded := 0
	entries := 0
	for _, pt := range patches {
		if pt.UserDefined == userDefined {
			loaded++
			entries += len(pt.Entries)
		}
	}

	fmt.Fprintf(md.Output, "%s source: %d headers, %d patches loaded, %d entries\n", label, headers, loaded, entries)
	for _, line := range dropped {
		fmt.Fprintf(md.Output, "dropped entry line (%s source): %s\n", label, line)
	}
}

// parseableAddress reports whether the string parses under the integer rules
// the speed hack loader uses.
func parseableAddress(s string) bool {
	_, err := strconv.ParseUint(s, 0, 32)
	return err == nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run through a profiler: cpu, mem, trace, all")
	overrides := md.AddString("prefs", "", "preference values for this run (key::value; ...)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	if *overrides != "" {
		prefs.PushCommandLineStack(*overrides)
		defer reportUnusedPrefs()
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("game ID required for %s mode", md)
	case 1:
		return performance.Check(md.Output, prof, md.GetArg(0), *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display vcs revision")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
