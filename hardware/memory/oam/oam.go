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

// Package oam contains the layout of Object Attribute Memory.
//
// OAM intermixes the object attributes and the affine parameters.
//
// There are 128 object attribute entries. Each entry is three 16-bit values,
// referred to as attr0, attr1 and attr2. Each set of attributes is followed by
// a 16-bit span that is not part of the object attributes.
//
// There are 32 affine parameter entries. Each entry is four 16-bit values,
// referred to as pa, pb, pc and pd. The parameters use the spans between the
// object attributes. The first pa is 6 bytes from the start of OAM, then pb,
// pc and pd are strided 8 bytes at a time from there. The next affine
// parameter entry begins 8 bytes after pd.
//
// A single byte cannot be validly written to OAM. The byte is written to both
// halves of the 16-bit unit. All the fields in OAM are 16-bit so this is not
// a problem in practice.
package oam

import (
	"github.com/jetsetilly/gbamap/assert"
	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
)

// Base addresses of the object attribute fields.
const (
	ObjAttr0BaseAddr = memorymap.OriginOAM
	ObjAttr1BaseAddr = uint32(0x0700_0002)
	ObjAttr2BaseAddr = uint32(0x0700_0004)
)

// ObjAttrStride is the distance between object attribute entries.
const ObjAttrStride = 8

// ObjAttrCount is the number of object attribute entries.
const ObjAttrCount = 128

// Base addresses of the affine parameter fields.
const (
	ObjAffinePABaseAddr = uint32(0x0700_0006)
	ObjAffinePBBaseAddr = uint32(0x0700_000e)
	ObjAffinePCBaseAddr = uint32(0x0700_0016)
	ObjAffinePDBaseAddr = uint32(0x0700_001e)
)

// ObjAffineStride is the distance between affine parameter entries. Each entry
// spans four object attribute entries.
const ObjAffineStride = ObjAttrStride * 4

// ObjAffineCount is the number of affine parameter entries.
const ObjAffineCount = 32

// layout checks
var (
	_ = [1]struct{}{}[ObjAttr1BaseAddr-ObjAttr0BaseAddr-2]
	_ = [1]struct{}{}[ObjAttr2BaseAddr-ObjAttr0BaseAddr-4]
	_ = [1]struct{}{}[ObjAffinePABaseAddr-ObjAttr0BaseAddr-6]
	_ = [1]struct{}{}[ObjAffinePBBaseAddr-ObjAffinePABaseAddr-ObjAttrStride]
	_ = [1]struct{}{}[ObjAffinePCBaseAddr-ObjAffinePBBaseAddr-ObjAttrStride]
	_ = [1]struct{}{}[ObjAffinePDBaseAddr-ObjAffinePCBaseAddr-ObjAttrStride]
	_ = [1]struct{}{}[ObjAttrStride*ObjAttrCount-memorymap.SizeOAM]
	_ = [1]struct{}{}[ObjAffineStride*ObjAffineCount-memorymap.SizeOAM]
)

// IndexObjAttr returns the address of attr0 for the object attribute entry.
// The attr1 and attr2 addresses are 2 and 4 bytes further along.
//
// Panics if i is not in the range 0 to 127.
func IndexObjAttr(i int) uint32 {
	i = assert.BoundCheck(i, ObjAttrCount)
	return ObjAttr0BaseAddr + ObjAttrStride*uint32(i)
}

// IndexObjAttr1 returns the address of attr1 for the object attribute entry.
func IndexObjAttr1(i int) uint32 {
	i = assert.BoundCheck(i, ObjAttrCount)
	return ObjAttr1BaseAddr + ObjAttrStride*uint32(i)
}

// IndexObjAttr2 returns the address of attr2 for the object attribute entry.
func IndexObjAttr2(i int) uint32 {
	i = assert.BoundCheck(i, ObjAttrCount)
	return ObjAttr2BaseAddr + ObjAttrStride*uint32(i)
}

// IndexObjAffineParam returns the address of pa for the affine parameter
// entry. The pb, pc and pd addresses are each 8 bytes further along.
//
// Panics if i is not in the range 0 to 31.
func IndexObjAffineParam(i int) uint32 {
	i = assert.BoundCheck(i, ObjAffineCount)
	return ObjAffinePABaseAddr + ObjAffineStride*uint32(i)
}

// IndexObjAffinePB returns the address of pb for the affine parameter entry.
func IndexObjAffinePB(i int) uint32 {
	i = assert.BoundCheck(i, ObjAffineCount)
	return ObjAffinePBBaseAddr + ObjAffineStride*uint32(i)
}

// IndexObjAffinePC returns the address of pc for the affine parameter entry.
func IndexObjAffinePC(i int) uint32 {
	i = assert.BoundCheck(i, ObjAffineCount)
	return ObjAffinePCBaseAddr + ObjAffineStride*uint32(i)
}

// IndexObjAffinePD returns the address of pd for the affine parameter entry.
func IndexObjAffinePD(i int) uint32 {
	i = assert.BoundCheck(i, ObjAffineCount)
	return ObjAffinePDBaseAddr + ObjAffineStride*uint32(i)
}
