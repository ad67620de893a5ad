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

// Package palram contains the layout of palette RAM.
//
// There are two palettes, one for backgrounds and one for objects. Each entry
// is a 16-bit Color.
//
// The palettes can be used in 4bpp mode or 8bpp mode:
//
//   - In 4bpp mode, the palette consists of 16 palbanks and each palbank has
//     16 entries. Entry 0 of each palbank is transparent so there are 15 usable
//     entries per palbank.
//
//   - In 8bpp mode, the palette is a single block of 256 entries. Entry 0 is
//     transparent so there are 255 usable entries.
//
// Each background or object decides which mode it uses. The memory is the
// same either way and the two indexing schemes agree wherever they overlap.
//
// Entry 0 of the background palette is the backdrop color. The backdrop color
// is used for any pixel that no background or object draws to.
//
// A single byte cannot be validly written to palette RAM. The byte is written
// to both halves of the 16-bit entry.
package palram

import (
	"github.com/jetsetilly/gbamap/assert"
	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
)

// Background palette.
const (
	BGPaletteRAMAddr      = memorymap.OriginPALRAM
	BGPaletteRAMEntrySize = 2
	BGPaletteRAMCount     = 256
)

// BackdropColorAddr is the address of the backdrop color.
const BackdropColorAddr = uint32(0x0500_0000)

// Object palette.
const (
	OBJPaletteRAMAddr      = uint32(0x0500_0200)
	OBJPaletteRAMEntrySize = 2
	OBJPaletteRAMCount     = 256
)

// The number of palbanks and the number of entries in each palbank.
const (
	PalbankCount      = 16
	PalbankEntryCount = 16
)

// layout checks
var (
	_ = [1]struct{}{}[BackdropColorAddr-BGPaletteRAMAddr]
	_ = [1]struct{}{}[PalbankCount*PalbankEntryCount-BGPaletteRAMCount]
	_ = [1]struct{}{}[PalbankCount*PalbankEntryCount-OBJPaletteRAMCount]
	_ = [1]struct{}{}[BGPaletteRAMAddr+BGPaletteRAMEntrySize*BGPaletteRAMCount-OBJPaletteRAMAddr]
	_ = [1]struct{}{}[OBJPaletteRAMAddr+OBJPaletteRAMEntrySize*OBJPaletteRAMCount-memorymap.MemtopPALRAM-1]
)

// IndexBGPalette4bpp returns the address of entry i in palbank p of the
// background palette.
//
// Panics if either p or i is not in the range 0 to 15.
func IndexBGPalette4bpp(p int, i int) uint32 {
	p = assert.BoundCheck(p, PalbankCount)
	i = assert.BoundCheck(i, PalbankEntryCount)
	return BGPaletteRAMAddr + BGPaletteRAMEntrySize*uint32(p*PalbankEntryCount+i)
}

// IndexBGPalette8bpp returns the address of entry i of the background palette.
//
// Panics if i is not in the range 0 to 255.
func IndexBGPalette8bpp(i int) uint32 {
	i = assert.BoundCheck(i, BGPaletteRAMCount)
	return BGPaletteRAMAddr + BGPaletteRAMEntrySize*uint32(i)
}

// IndexOBJPalette4bpp returns the address of entry i in palbank p of the
// object palette.
//
// Panics if either p or i is not in the range 0 to 15.
func IndexOBJPalette4bpp(p int, i int) uint32 {
	p = assert.BoundCheck(p, PalbankCount)
	i = assert.BoundCheck(i, PalbankEntryCount)
	return OBJPaletteRAMAddr + OBJPaletteRAMEntrySize*uint32(p*PalbankEntryCount+i)
}

// IndexOBJPalette8bpp returns the address of entry i of the object palette.
//
// Panics if i is not in the range 0 to 255.
func IndexOBJPalette8bpp(i int) uint32 {
	i = assert.BoundCheck(i, OBJPaletteRAMCount)
	return OBJPaletteRAMAddr + OBJPaletteRAMEntrySize*uint32(i)
}
