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

// Package statsview is an optional package that is only functional when the
// statsview build tag is present.
//
// It provides a HTTP server running locally offering runtime statistics of
// the emulator process. The statistics are provided by
// "github.com/go-echarts/statsview".
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12616/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12616/debug/pprof/
//
// Without the build tag, Available() returns false and Launch() does
// nothing but say so.
package statsview
