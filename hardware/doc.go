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

// Package hardware is the base package for the console state the patch engine
// works against. It and its sub-packages model only what the engine needs to
// see of the machine: the CPU register file and the two banks of main memory.
//
// The Console type is the root of the model and contains references to the
// sub-systems. The Reset() function establishes the machine state of a running
// game, with address translation enabled and a walkable call stack. A host
// emulator would replace this package wholesale with its own live state.
package hardware
