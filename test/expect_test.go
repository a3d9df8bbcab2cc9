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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher16/test"
)

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
}

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, "abc", "abc")
	test.ExpectInequality(t, uint8(1), uint8(2))
	test.ExpectApproximate(t, 99.0, 100.0, 0.02)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	tw.Write([]byte("hello"))
	test.ExpectSuccess(t, tw.Compare("hello"))
	test.ExpectSuccess(t, tw.HasPrefix("he"))
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
