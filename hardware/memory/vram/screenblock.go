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

package vram

import "github.com/jetsetilly/gbamap/assert"

// ScreenblockCount is the number of screenblock slots.
const ScreenblockCount = 32

// ScreenblockStride is the distance between screenblock slots. It is counted
// in 4bpp tile units whatever the mode of the layer using the screenblock.
const ScreenblockStride = 32 * Tile4bppSize

// ScreenblockBaseAddr is the address of screenblock slot 0. Screenblocks
// share their address range with the object charblocks.
const ScreenblockBaseAddr = CharblockOBJBaseAddr

// the screenblock slots exactly cover the object charblocks
var _ = [1]struct{}{}[ScreenblockCount*ScreenblockStride-CharblockOBJCount*CharblockSize]

// IndexScreenblock returns the address of the screenblock slot.
//
// Panics if i is not in the range 0 to 31.
func IndexScreenblock(i int) uint32 {
	i = assert.BoundCheck(i, ScreenblockCount)
	return ScreenblockBaseAddr + ScreenblockStride*uint32(i)
}

// Text mode screenblocks.
const (
	TextScreenblockEntrySize  = 2
	TextScreenblockEntryCount = 32 * 32
	TextScreenblockSize       = TextScreenblockEntrySize * TextScreenblockEntryCount
)

var _ = [1]struct{}{}[TextScreenblockSize-2*1024]

// TextLayerSize is the size of a text mode layer, in tiles.
type TextLayerSize int

// List of valid TextLayerSize values. The value is the size field of the
// layer's BGxCNT register.
const (
	Text32x32 TextLayerSize = iota
	Text64x32
	Text32x64
	Text64x64
)

// TextLayerSizeCount is the number of TextLayerSize values.
const TextLayerSizeCount = 4

var _ = [1]struct{}{}[TextLayerSizeCount-1-int(Text64x64)]

func (s TextLayerSize) String() string {
	switch s {
	case Text32x32:
		return "32x32"
	case Text64x32:
		return "64x32"
	case Text32x64:
		return "32x64"
	case Text64x64:
		return "64x64"
	}
	return "undefined"
}

// Screenblocks returns the number of consecutive text screenblocks used by a
// layer of the size. 64x32 uses the base screenblock and the one to its
// right. 32x64 uses the base and the one beneath. 64x64 uses the base, then
// right, then beneath, then beneath-right.
//
// Panics if the size is not one of the listed TextLayerSize values.
func (s TextLayerSize) Screenblocks() int {
	switch assert.BoundCheck(int(s), TextLayerSizeCount) {
	case int(Text64x32), int(Text32x64):
		return 2
	case int(Text64x64):
		return 4
	}
	return 1
}

// Affine mode screenblocks. Entries are 1 byte and the number of entries
// depends on the size class of the layer.
const (
	AffineScreenblockEntrySize = 1

	AffineSize0ScreenblockEntryCount = 16 * 16
	AffineSize0ScreenblockSize       = AffineScreenblockEntrySize * AffineSize0ScreenblockEntryCount

	AffineSize1ScreenblockEntryCount = 32 * 32
	AffineSize1ScreenblockSize       = AffineScreenblockEntrySize * AffineSize1ScreenblockEntryCount

	AffineSize2ScreenblockEntryCount = 64 * 64
	AffineSize2ScreenblockSize       = AffineScreenblockEntrySize * AffineSize2ScreenblockEntryCount

	AffineSize3ScreenblockEntryCount = 128 * 128
	AffineSize3ScreenblockSize       = AffineScreenblockEntrySize * AffineSize3ScreenblockEntryCount

	// the number of affine size classes
	AffineSizeClassCount = 4
)

var (
	_ = [1]struct{}{}[AffineSize0ScreenblockSize-256]
	_ = [1]struct{}{}[AffineSize1ScreenblockSize-1024]
	_ = [1]struct{}{}[AffineSize2ScreenblockSize-1024*4]
	_ = [1]struct{}{}[AffineSize3ScreenblockSize-1024*16]
)

// size and entry count of each affine size class
var affineEntryCount = [AffineSizeClassCount]int{
	AffineSize0ScreenblockEntryCount,
	AffineSize1ScreenblockEntryCount,
	AffineSize2ScreenblockEntryCount,
	AffineSize3ScreenblockEntryCount,
}

// AffineScreenblockEntryCount returns the number of entries in an affine
// screenblock of the size class.
//
// Panics if sizeClass is not in the range 0 to 3.
func AffineScreenblockEntryCount(sizeClass int) int {
	return affineEntryCount[assert.BoundCheck(sizeClass, AffineSizeClassCount)]
}

// AffineScreenblockSize returns the size in bytes of an affine screenblock of
// the size class.
//
// Panics if sizeClass is not in the range 0 to 3.
func AffineScreenblockSize(sizeClass int) int {
	return AffineScreenblockEntrySize * AffineScreenblockEntryCount(sizeClass)
}

// AffineScreenblockSlots returns the number of screenblock slots spanned by
// an affine screenblock of the size class. Layouts smaller than a slot still
// use the whole slot.
//
// Panics if sizeClass is not in the range 0 to 3.
func AffineScreenblockSlots(sizeClass int) int {
	sz := AffineScreenblockSize(sizeClass)
	return (sz + ScreenblockStride - 1) / ScreenblockStride
}

// TextScreenblockSlots returns the number of screenblock slots spanned by a
// text layer of the size.
//
// Panics if the size is not one of the listed TextLayerSize values.
func TextScreenblockSlots(s TextLayerSize) int {
	sz := s.Screenblocks() * TextScreenblockSize
	return (sz + ScreenblockStride - 1) / ScreenblockStride
}

// Bitmap frames for video modes 3, 4 and 5. Frame 1 is used by modes 4 and 5.
const (
	VRAMFrame0BaseAddr      = VRAMBaseAddr
	VRAMMode4Frame1BaseAddr = uint32(0x0600_a000)
)
