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

// FramesPerSecond is the rate the console drives its per-frame hook at.
const FramesPerSecond = 60

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and that value as a multiple of the console's own
// frame rate.
func CalcFPS(numFrames int, duration float64) (fps float64, multiple float64) {
	fps = float64(numFrames) / duration
	multiple = fps / FramesPerSecond
	return fps, multiple
}
