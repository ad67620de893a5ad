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

package oam_test

import (
	"testing"

	"github.com/jetsetilly/gbamap/assert"
	"github.com/jetsetilly/gbamap/curated"
	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
	"github.com/jetsetilly/gbamap/hardware/memory/oam"
	"github.com/jetsetilly/gbamap/test"
)

func expectOutOfBounds(t *testing.T, f func(), tags ...any) {
	t.Helper()
	r := test.ExpectPanic(t, f, tags...)
	err, ok := r.(error)
	if test.ExpectSuccess(t, ok, tags...) {
		test.ExpectSuccess(t, curated.Is(err, assert.OutOfBounds), tags...)
	}
}

func TestLayout(t *testing.T) {
	test.ExpectEquality(t, oam.ObjAttr1BaseAddr-oam.ObjAttr0BaseAddr, 2)
	test.ExpectEquality(t, oam.ObjAttr2BaseAddr-oam.ObjAttr0BaseAddr, 4)
	test.ExpectEquality(t, oam.ObjAffinePABaseAddr-oam.ObjAttr0BaseAddr, 6)
	test.ExpectEquality(t, oam.ObjAffineStride, 32)
	test.ExpectEquality(t, uint32(oam.ObjAttrStride*oam.ObjAttrCount), memorymap.SizeOAM)
	test.ExpectEquality(t, uint32(oam.ObjAffineStride*oam.ObjAffineCount), memorymap.SizeOAM)
}

func TestIndexObjAttr(t *testing.T) {
	for i := 0; i < oam.ObjAttrCount; i++ {
		a := oam.IndexObjAttr(i)
		test.ExpectEquality(t, a, 0x0700_0000+8*uint32(i), i)
		test.ExpectEquality(t, oam.IndexObjAttr1(i), a+2, i)
		test.ExpectEquality(t, oam.IndexObjAttr2(i), a+4, i)
		test.ExpectSuccess(t, memorymap.IsArea(oam.IndexObjAttr2(i)+1, memorymap.OAM), i)
	}

	expectOutOfBounds(t, func() { oam.IndexObjAttr(128) })
	expectOutOfBounds(t, func() { oam.IndexObjAttr(-1) })
	expectOutOfBounds(t, func() { oam.IndexObjAttr1(128) })
	expectOutOfBounds(t, func() { oam.IndexObjAttr2(128) })
}

func TestIndexObjAffineParam(t *testing.T) {
	for i := 0; i < oam.ObjAffineCount; i++ {
		a := oam.IndexObjAffineParam(i)
		test.ExpectEquality(t, a, oam.ObjAffinePABaseAddr+32*uint32(i), i)
		test.ExpectEquality(t, oam.IndexObjAffinePB(i), a+8, i)
		test.ExpectEquality(t, oam.IndexObjAffinePC(i), a+16, i)
		test.ExpectEquality(t, oam.IndexObjAffinePD(i), a+24, i)
		test.ExpectSuccess(t, memorymap.IsArea(oam.IndexObjAffinePD(i)+1, memorymap.OAM), i)
	}

	expectOutOfBounds(t, func() { oam.IndexObjAffineParam(32) })
	expectOutOfBounds(t, func() { oam.IndexObjAffinePB(32) })
	expectOutOfBounds(t, func() { oam.IndexObjAffinePC(-1) })
	expectOutOfBounds(t, func() { oam.IndexObjAffinePD(32) })
}

// the affine parameters fill the gaps between the object attributes. no pa,
// pb, pc or pd address coincides with an attr0, attr1 or attr2 address
func TestInterleaving(t *testing.T) {
	attrs := make(map[uint32]bool)
	for i := 0; i < oam.ObjAttrCount; i++ {
		attrs[oam.IndexObjAttr(i)] = true
		attrs[oam.IndexObjAttr1(i)] = true
		attrs[oam.IndexObjAttr2(i)] = true
	}

	params := make(map[uint32]bool)
	for i := 0; i < oam.ObjAffineCount; i++ {
		for _, a := range []uint32{
			oam.IndexObjAffineParam(i),
			oam.IndexObjAffinePB(i),
			oam.IndexObjAffinePC(i),
			oam.IndexObjAffinePD(i),
		} {
			test.ExpectFailure(t, attrs[a], a)
			test.ExpectEquality(t, (a-oam.ObjAttr0BaseAddr)%oam.ObjAttrStride, 6, a)
			params[a] = true
		}
	}

	// every 16-bit unit of OAM is accounted for
	test.ExpectEquality(t, len(attrs)+len(params), int(memorymap.SizeOAM/2))
}
