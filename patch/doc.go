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

// Package patch is the runtime memory-patch engine. Patches are externally
// authored, per-title lists of memory writes applied once per video frame,
// letting a running game be altered without touching the program image.
//
// Patch definitions live in the per-title configuration files handled by the
// gameini and gamesettings packages. Two sources are read in order, the
// distributable default file and then the user's local file. A patch is
// declared with a header line and followed by any number of entry lines:
//
//	[OnFrame]
//	$Skip Intro
//	0x80003f50:dword:0x60000000
//	0x80003f54:word:0x1234
//
// The width token "byte" means an 8 bit write, "word" a 16 bit write and
// "dword" a 32 bit write. The unusual meaning of "word" and "dword" is kept
// for compatibility with the large body of existing patch files.
//
// Patches are enabled by name in the local source only, in a section named
// after the patch section with an "_Enabled" suffix:
//
//	[OnFrame_Enabled]
//	$Skip Intro
//
// The Engine type owns the loaded patch set and the speed hack table for the
// lifetime of an emulation session. Once per frame the host calls
// ApplyFramePatches, which refuses to write, returning false, unless the CPU
// is judged to be at a safe instant. The judgement is the IsStackSane
// heuristic and is deliberately approximate. It requires address translation
// to be on and the call stack to show two coherent frames, which avoids
// patching while the CPU is inside an exception vector at the price of false
// negatives on shallow stacks.
//
// The engine performs unconditional value writes only. Conditional and
// generated code changes are the business of the two code handler subsystems
// (gecko and action replay). The engine sequences their per-frame triggers
// and forwards lifecycle events but never inspects them.
package patch
