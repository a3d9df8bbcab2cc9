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

package logger_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher16/logger"
	"github.com/jetsetilly/gopher16/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeatsAndPermission(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log(logger.Allow, "cpu", errors.New("stopped"))
	logger.Log(logger.Allow, "cpu", errors.New("stopped"))
	logger.Logf(logger.Allow, "cpu", "%s", "stopped")
	logger.Log(deny{}, "cpu", "not logged")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "cpu: stopped (repeat x3)\n")
}
