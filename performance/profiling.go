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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/gopherdol/resources"
)

// Profile is used to specify the type of profile that should be generated.
// Values can be ORed together.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfileString converts a string to a Profile value. Common
// combinations are recognised, otherwise the string is split on commas and
// each part matched against the individual profile types.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "ALL":
		return ProfileAll, nil
	}

	p := ProfileNone
	for _, t := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		default:
			return ProfileNone, fmt.Errorf("profile: unrecognised type: %s", t)
		}
	}

	return p, nil
}

// the resource directory profiling files are written to.
const profilingDir = "profiling"

// RunProfiler runs the supplied function, generating profiling files as
// instructed. Files are named for the tag and written to the profiling
// resource directory.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		pth, err := resources.JoinPath(profilingDir, fmt.Sprintf("%s_cpu.profile", tag))
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		f, err := os.Create(pth)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		pth, err := resources.JoinPath(profilingDir, fmt.Sprintf("%s_trace.profile", tag))
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		f, err := os.Create(pth)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		defer f.Close()

		err = trace.Start(f)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		pth, err := resources.JoinPath(profilingDir, fmt.Sprintf("%s_mem.profile", tag))
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		f, err := os.Create(pth)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}

	return nil
}
