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

import (
	"fmt"

	"github.com/jetsetilly/gbamap/assert"
	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
)

// VRAMBaseAddr is the base address of VRAM, regardless of video mode.
const VRAMBaseAddr = memorymap.OriginVRAM

// Tile sizes in bytes.
const (
	Tile4bppSize = 32
	Tile8bppSize = 64
)

// The number of tiles in a charblock.
const (
	Charblock4bppCount = 512
	Charblock8bppCount = 256
)

// CharblockSize is the size of a single charblock. A charblock holds more or
// fewer tiles depending on tile size but the number of bytes is fixed.
const CharblockSize = Charblock4bppCount * Tile4bppSize

var _ = [1]struct{}{}[Charblock4bppCount*Tile4bppSize-Charblock8bppCount*Tile8bppSize]
var _ = [1]struct{}{}[CharblockSize-16*1024]

// Background charblocks.
const (
	CharblockBGBaseAddr = VRAMBaseAddr
	CharblockBGCount    = 4
)

// Object charblocks. The first object charblock is not available in video
// modes 3, 4 and 5.
const (
	CharblockOBJBaseAddr = VRAMBaseAddr + CharblockSize*CharblockBGCount
	CharblockOBJCount    = 2
)

// CharblockOBJTileCount is the number of object tile indexes.
const CharblockOBJTileCount = CharblockOBJCount * Charblock4bppCount

// object charblocks follow the background charblocks and end at the end of VRAM
var (
	_ = [1]struct{}{}[CharblockOBJBaseAddr-(CharblockBGBaseAddr+CharblockBGCount*CharblockSize)]
	_ = [1]struct{}{}[CharblockOBJBaseAddr+CharblockOBJCount*CharblockSize-1-memorymap.MemtopVRAM]
	_ = [1]struct{}{}[CharblockOBJTileCount-1024]
)

// Charblock is the address of a background charblock. It is a distinct type
// so that a tile index is never confused with a charblock index.
type Charblock uint32

// IndexBGCharblock returns the background charblock.
//
// Panics if i is not in the range 0 to 3.
func IndexBGCharblock(i int) Charblock {
	i = assert.BoundCheck(i, CharblockBGCount)
	return Charblock(CharblockBGBaseAddr + CharblockSize*uint32(i))
}

// IndexTile4bpp returns the address of the 4bpp tile in the charblock.
//
// Panics if i is not in the range 0 to 511.
func (cb Charblock) IndexTile4bpp(i int) uint32 {
	i = assert.BoundCheck(i, Charblock4bppCount)
	return uint32(cb) + Tile4bppSize*uint32(i)
}

// IndexTile8bpp returns the address of the 8bpp tile in the charblock.
//
// Panics if i is not in the range 0 to 255.
func (cb Charblock) IndexTile8bpp(i int) uint32 {
	i = assert.BoundCheck(i, Charblock8bppCount)
	return uint32(cb) + Tile8bppSize*uint32(i)
}

// Addr returns the address of the charblock.
func (cb Charblock) Addr() uint32 {
	return uint32(cb)
}

func (cb Charblock) String() string {
	return fmt.Sprintf("charblock %#08x", uint32(cb))
}

// IndexOBJTile returns the address of the object tile. Object tile indexes
// are relative to the start of the object charblocks and are in 4bpp units,
// even if the object is in 8bpp mode.
//
// Panics if i is not in the range 0 to 1023.
func IndexOBJTile(i int) uint32 {
	i = assert.BoundCheck(i, CharblockOBJTileCount)
	return CharblockOBJBaseAddr + Tile4bppSize*uint32(i)
}
