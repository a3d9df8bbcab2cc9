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

// Package version reports the version of the application. A number is set
// by the build process with the linker flag:
//
//	-ldflags "-X github.com/jetsetilly/gopher16/version.number=v0.1.0"
//
// Otherwise the version is taken from the VCS information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher16"

// set by the linker. empty if the project was not built with a version
// number
var number string

// the VCS revision. suffixed with "+dirty" if the source had been modified
// but not committed
var revision string

// "unreleased" if the project was built without a version number, "local"
// if there is no version number and no VCS information. For example, when
// using "go run ."
var version string

// Version returns the version string, the revision string and whether this
// is a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for
// printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	var vcs bool
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if vcsModified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
