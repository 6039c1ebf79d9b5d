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
	"io"
	"time"

	"github.com/jetsetilly/gopherdol/gamesettings"
	"github.com/jetsetilly/gopherdol/hardware"
	"github.com/jetsetilly/gopherdol/patch"
)

// only check for the end of the measurement period every checkBrake frames.
// checking the timer channel is relatively expensive.
const checkBrake = 1000

// Check measures the throughput of the patch engine's per-frame entry point.
// The engine is loaded with the configuration for the supplied game ID and
// run against the reference machine for the specified duration, as fast as
// the host allows.
//
// Profiling information is generated as defined by the profile argument.
func Check(output io.Writer, profile Profile, gameID string, duration time.Duration) error {
	set, err := gamesettings.Load(gameID)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	prf, err := patch.NewPreferences()
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	con := hardware.NewConsole()
	eng := patch.NewEngine(con.CPU, con.Mem, set, prf, nil, nil)
	eng.LoadPatches()

	numFrames := 0

	runner := func() error {
		// expires when the measurement period has elapsed
		timerChan := make(chan bool)
		time.AfterFunc(duration, func() {
			timerChan <- true
		})

		brake := 0
		for {
			if !eng.ApplyFramePatches() {
				return fmt.Errorf("performance: reference machine is in an unsafe state")
			}
			numFrames++

			brake++
			if brake >= checkBrake {
				brake = 0
				select {
				case <-timerChan:
					return nil
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	fps, multiple := CalcFPS(numFrames, duration.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f frames/sec (%d frames in %.2f seconds) %.0fx console rate\n", fps, numFrames, duration.Seconds(), multiple)))

	return nil
}
