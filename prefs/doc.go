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

// Package prefs provides typed preference values and a way of grouping them
// under string keys.
//
// Values are safe to read and write from different goroutines. Each value
// type can have a hook that is run before a new value is stored, which can
// veto the change by returning an error, and a hook run after.
//
// Preference values can be overridden from the command line with a prefs
// string. Prefs strings have the form:
//
//	key::value; key::value
//
// The prefs string is pushed onto a stack with PushCommandLineStack() and is
// consumed by the Collection.ApplyCommandLine() function. Keys that are
// consumed are removed from the top of the stack.
package prefs
