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

package test

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// id returns a string built from the tags. the string is suitable for
// prefixing failure messages
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := strings.Builder{}
	for _, t := range tags {
		s.WriteString(fmt.Sprintf("%v: ", t))
	}
	return s.String()
}

// ExpectEquality is used to test equality between one value and another. It
// returns true if the test succeeds.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// It returns true if the values are not equal.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T, tags ...any) bool {
	t.Helper()
	if value == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), value, value, expectedValue)
		return false
	}
	return true
}

// ExpectApproximate is used to test approximate equality between one value
// and another. The tolerance is a ratio of the expected value.
func ExpectApproximate[T ~int | ~int64 | ~uint64 | ~float32 | ~float64](t *testing.T, value T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()
	d := math.Abs(float64(value) - float64(expectedValue))
	if d > math.Abs(float64(expectedValue))*tolerance {
		t.Errorf("%sapproximation test of type %T failed: '%v' is not within %.2f%% of '%v'", id(tags...), value, value, tolerance*100, expectedValue)
		return false
	}
	return true
}

// expect reports whether the value is a success value. the meaning of
// success depends on the type
func expect(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}

	return false
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Types bool and error are supported. A nil value is also a success
// value.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v) {
		if err, ok := v.(error); ok {
			t.Errorf("%sexpected success (error: %v)", id(tags...), err)
		} else {
			t.Errorf("%sexpected success (%T)", id(tags...), v)
		}
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Types bool and error are supported.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}
