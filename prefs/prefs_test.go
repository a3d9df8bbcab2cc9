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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher16/prefs"
	"github.com/jetsetilly/gopher16/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string is sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// partially invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	ok, _ := prefs.GetCommandLinePref("foo_bar")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
}

func TestCollection(t *testing.T) {
	var region prefs.String
	var random prefs.Bool
	var seed prefs.Int

	region.SetOptions("auto", "ntsc", "pal")
	test.ExpectSuccess(t, region.Set("AUTO"))

	c := prefs.NewCollection()
	test.ExpectSuccess(t, c.Add("region", &region))
	test.ExpectSuccess(t, c.Add("random", &random))
	test.ExpectSuccess(t, c.Add("seed", &seed))
	test.ExpectFailure(t, c.Add("seed", &seed))

	prefs.PushCommandLineStack("region::pal; seed::12; unused::1")
	test.ExpectSuccess(t, c.ApplyCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	test.ExpectEquality(t, region.String(), "PAL")
	test.ExpectEquality(t, seed.Get().(int), 12)
	test.ExpectEquality(t, random.Get().(bool), false)

	// options are enforced
	test.ExpectFailure(t, region.Set("SECAM"))
	test.ExpectEquality(t, region.String(), "PAL")

	test.ExpectSuccess(t, c.Set("random", "on"))
	test.ExpectEquality(t, random.Get().(bool), true)
	test.ExpectFailure(t, c.Set("missing", 1))
}

func TestHooks(t *testing.T) {
	var b prefs.Bool

	veto := errors.New("veto")
	b.SetHookPre(func(v prefs.Value) error {
		if v.(bool) {
			return veto
		}
		return nil
	})

	post := 0
	b.SetHookPost(func(v prefs.Value) error {
		post++
		return nil
	})

	test.ExpectSuccess(t, errors.Is(b.Set(true), veto))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Set(false))
	test.ExpectEquality(t, post, 1)
}
