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

// Package statsview provides a local HTTP server offering live charts of
// runtime statistics for the running process. The package is only built when
// the statsview build constraint is given. Without the constraint the Launch()
// function is a stub and Available() returns false.
//
// Once launched, the charts can be viewed at:
//
//	localhost:12800/debug/statsview
//
// The standard Go pprof endpoints are served from the same address:
//
//	localhost:12800/debug/pprof/
//
// Charting is provided by the "github.com/go-echarts/statsview" package.
package statsview
