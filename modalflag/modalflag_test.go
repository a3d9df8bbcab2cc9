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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/modalflag"
	"github.com/jetsetilly/gopher16/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-verbose", "game.sfc", "extra"})
	verbose := md.AddBool("verbose", false, "verbose output")
	test.ExpectEquality(t, *verbose, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *verbose, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "game.sfc")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"step", "-frames", "10", "game.sfc"})
	md.AddSubModes("RUN", "STEP", "INFO")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "STEP")

	md.NewMode()
	frames := md.AddInt("frames", 0, "number of frames")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 10)
	test.ExpectEquality(t, md.GetArg(0), "game.sfc")
	test.ExpectEquality(t, md.Path(), "STEP")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"game.sfc"})
	md.AddSubModes("RUN", "STEP")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	// flags for the default mode are not an error
	md = modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-frames", "5", "game.sfc"})
	md.AddSubModes("RUN", "STEP")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	frames := md.AddInt("frames", 0, "number of frames")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 5)
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-nosuchflag"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}
