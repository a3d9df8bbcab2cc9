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

package random_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher16/random"
	"github.com/jetsetilly/gopher16/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom(0)
	a.ZeroSeed = true
	b := random.NewRandom(1234)
	b.ZeroSeed = true

	ba := make([]byte, 64)
	bb := make([]byte, 64)
	a.FillBytes(ba)
	b.FillBytes(bb)
	test.ExpectSuccess(t, bytes.Equal(ba, bb))
}

func TestSeed(t *testing.T) {
	a := random.NewRandom(99)
	b := random.NewRandom(99)
	test.ExpectEquality(t, a.Intn(1000), b.Intn(1000))
}
