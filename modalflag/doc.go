// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with its own set of flags.
//
// The arguments are given to NewArgs() and then consumed by one or more
// calls to Parse(). Flags for each mode are added between NewMode() and
// Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "INFO")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames to run")
//		...
//	}
//
// The first sub-mode is the default. It is selected when the first
// argument after the flags is not a recognised mode. Mode comparisons are
// case insensitive and modes are always reported in upper case.
//
// Arguments that are neither flags nor modes are retrieved with
// RemainingArgs() or GetArg().
//
// Help is printed to the Output writer when the -help flag is seen. In that
// case Parse() returns ParseHelp and the caller should stop quietly.
package modalflag
