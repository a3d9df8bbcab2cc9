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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() function is the most basic and probably the most
// useful function. It compares like-typed variables for equality and returns
// true if they match. The ExpectSuccess() and ExpectFailure() functions test
// for "success" values, the meaning of which depends on the type. For
// example, a nil error is a success value and a true boolean is a success
// value.
//
// The Demand*() functions are the same as the Expect*() functions except that
// the test is stopped immediately on failure.
//
// The Writer type can be used to capture output and compare it with an
// expected string.
//
// All functions take an optional list of tags. The tags are printed with
// any failure message and help identify which of several similar tests has
// failed.
package test
