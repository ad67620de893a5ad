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

// Package memorymap describes the regions of the 32-bit address space and
// facilitates the translation of addresses to primary address equivalents.
//
// Each region is described by a Region value. The Regions() function returns
// all of them in address order and Summary() renders them as text.
//
// Several regions are mirrored throughout their address block. The
// MapAddress() function should be used to produce a "mapped address" from
// any address that might be a mirror.
//
//	ma, area := memorymap.MapAddress(0x03ff_fff8)
//
// In this example ma is 0x0300_7ff8 and area is IWRAM.
//
// The origin and memtop constants are checked at compile time so that no two
// regions overlap and so that the size constants agree with the origin and
// memtop values. See the assert package for a description of how.
package memorymap
