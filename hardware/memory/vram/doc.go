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

// Package vram contains the layout of video RAM.
//
// The use of VRAM depends on the video mode:
//
//   - Mode 0: layers 0, 1, 2 and 3 are text mode
//   - Mode 1: layers 0 and 1 are text mode, layer 2 is affine
//   - Mode 2: layers 2 and 3 are affine
//   - Mode 3: layer 2 is a 240x160 direct color bitmap
//   - Mode 4: layer 2 is two 240x160 indexed color bitmaps
//   - Mode 5: layer 2 is two 160x128 direct color bitmaps
//
// A tile is always 8x8 pixels but can be either 4bpp or 8bpp.
//
// Tile data is arranged in charblocks. A charblock is 16k and VRAM has four
// charblocks for background tiles and two charblocks for object tiles. In
// video modes 3, 4 and 5 the bitmap data occupies the background charblocks
// and the first object charblock, so only the last charblock is available
// for object tiles.
//
// IndexBGCharblock() returns a Charblock rather than an address. Tiles are
// then indexed relative to the charblock with the IndexTile4bpp() and
// IndexTile8bpp() functions. Object tiles are indexed with IndexOBJTile() and
// are always counted in 4bpp units, even for an object in 8bpp mode.
//
// A screenblock gives the arrangement of tiles for a layer. Screenblock
// indexes are in the range 0 to 31 and share space with the object tile data.
// It is the caller's responsibility to not place screenblocks and tile data
// in the same memory.
//
// Text mode screen entries are 2 bytes and a screenblock is 32x32 entries. A
// text layer uses 1, 2 or 4 screenblocks depending on its TextLayerSize.
//
// Affine mode screen entries are 1 byte and the number of entries depends on
// the size class of the layer. Size class 2 and 3 layouts span several
// screenblock slots and the caller must choose a base index so that the
// layout does not overlap other screenblocks that are in use.
//
// A single byte cannot be validly written to VRAM. The byte is written to
// both halves of the 16-bit unit. This matters for the mode 4 bitmap and for
// affine screenblocks. To change a single byte, read at least 16-bits, mask
// in the new value and write back the larger value.
package vram
