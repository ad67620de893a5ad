// This file is part of gbamap.
//
// gbamap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbamap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbamap.  If not, see <https://www.gnu.org/licenses/>.

package assert_test

import (
	"testing"

	"github.com/jetsetilly/gbamap/assert"
	"github.com/jetsetilly/gbamap/curated"
	"github.com/jetsetilly/gbamap/test"
)

func TestBoundCheck(t *testing.T) {
	for i := 0; i < 16; i++ {
		test.ExpectEquality(t, assert.BoundCheck(i, 16), i)
		test.ExpectSuccess(t, assert.InBounds(i, 16))
	}

	for _, i := range []int{-1, 16, 17, 1 << 30} {
		test.ExpectFailure(t, assert.InBounds(i, 16))

		r := test.ExpectPanic(t, func() { assert.BoundCheck(i, 16) }, i)
		err, ok := r.(error)
		test.DemandSuccess(t, ok, i)
		test.ExpectSuccess(t, curated.Is(err, assert.OutOfBounds), i)
	}
}

func TestZeroBound(t *testing.T) {
	test.ExpectFailure(t, assert.InBounds(0, 0))
	test.ExpectPanic(t, func() { assert.BoundCheck(0, 0) })
}

func TestOutOfBoundsMessage(t *testing.T) {
	r := test.ExpectPanic(t, func() { assert.BoundCheck(128, 128) })
	test.ExpectEquality(t, r.(error).Error(), "index out of bounds: 128 (bound 128)")
}
