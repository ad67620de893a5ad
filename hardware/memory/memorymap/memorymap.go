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

package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case BIOS:
		return "BIOS"
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case PALRAM:
		return "PALRAM"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case ROMWait0:
		return "ROM (wait 0)"
	case ROMWait1:
		return "ROM (wait 1)"
	case ROMWait2:
		return "ROM (wait 2)"
	case SRAM:
		return "SRAM"
	}

	return "undefined"
}

// The different memory areas, in address order.
const (
	Undefined Area = iota
	BIOS
	EWRAM
	IWRAM
	IO
	PALRAM
	VRAM
	OAM
	ROMWait0
	ROMWait1
	ROMWait2
	SRAM
)

// Widths is a set of access widths.
type Widths int

// List of valid access widths.
const (
	Width8 Widths = 1 << iota
	Width16
	Width32

	NoAccess Widths = 0
	AnyWidth        = Width8 | Width16 | Width32
)

func (w Widths) String() string {
	if w == NoAccess {
		return "-"
	}

	s := make([]string, 0, 3)
	if w&Width8 == Width8 {
		s = append(s, "8")
	}
	if w&Width16 == Width16 {
		s = append(s, "16")
	}
	if w&Width32 == Width32 {
		s = append(s, "32")
	}
	return strings.Join(s, "/")
}

// Region describes a contiguous area of the address space.
type Region struct {
	Area   Area
	Origin uint32
	Memtop uint32

	// the smallest unit that can be validly written to the region. for some
	// regions a byte write is mirrored to both halves of a 16-bit unit
	EntrySize uint32

	// width of the data bus in bits
	BusWidth int

	// wait states for a default configured system. ROM and SRAM wait states
	// can be changed with the WAITCNT register but are never zero
	WaitStates int

	// access widths that produce meaningful results
	Read  Widths
	Write Widths
}

// Size returns the number of bytes in the region.
func (r Region) Size() uint32 {
	return r.Memtop - r.Origin + 1
}

// Contains returns true if the address falls inside the primary address
// range of the region. Mirrors are not considered.
func (r Region) Contains(address uint32) bool {
	return address >= r.Origin && address <= r.Memtop
}

func (r Region) String() string {
	return fmt.Sprintf("%08x -> %08x\t%s", r.Origin, r.Memtop, r.Area)
}

// regions in address order. the order is relied upon by MapAddress() and
// Summary()
var regions = [...]Region{
	{
		Area: BIOS, Origin: OriginBIOS, Memtop: MemtopBIOS,
		EntrySize: 1, BusWidth: 32, WaitStates: 0,
		Read: AnyWidth, Write: NoAccess,
	},
	{
		Area: EWRAM, Origin: OriginEWRAM, Memtop: MemtopEWRAM,
		EntrySize: EWRAMEntrySize, BusWidth: 32, WaitStates: 2,
		Read: AnyWidth, Write: AnyWidth,
	},
	{
		Area: IWRAM, Origin: OriginIWRAM, Memtop: MemtopIWRAM,
		EntrySize: IWRAMEntrySize, BusWidth: 32, WaitStates: 0,
		Read: AnyWidth, Write: AnyWidth,
	},
	{
		Area: IO, Origin: OriginIO, Memtop: MemtopIO,
		EntrySize: 1, BusWidth: 32, WaitStates: 0,
		Read: AnyWidth, Write: AnyWidth,
	},
	{
		Area: PALRAM, Origin: OriginPALRAM, Memtop: MemtopPALRAM,
		EntrySize: 2, BusWidth: 16, WaitStates: 0,
		Read: Width16 | Width32, Write: Width16 | Width32,
	},
	{
		Area: VRAM, Origin: OriginVRAM, Memtop: MemtopVRAM,
		EntrySize: 2, BusWidth: 16, WaitStates: 0,
		Read: Width16 | Width32, Write: Width16 | Width32,
	},
	{
		Area: OAM, Origin: OriginOAM, Memtop: MemtopOAM,
		EntrySize: 2, BusWidth: 32, WaitStates: 0,
		Read: Width16 | Width32, Write: Width16 | Width32,
	},
	{
		Area: ROMWait0, Origin: OriginROMWait0, Memtop: MemtopROMWait0,
		EntrySize: 1, BusWidth: 16, WaitStates: ROMDefaultWaitStates,
		Read: AnyWidth, Write: NoAccess,
	},
	{
		Area: ROMWait1, Origin: OriginROMWait1, Memtop: MemtopROMWait1,
		EntrySize: 1, BusWidth: 16, WaitStates: ROMDefaultWaitStates,
		Read: AnyWidth, Write: NoAccess,
	},
	{
		Area: ROMWait2, Origin: OriginROMWait2, Memtop: MemtopROMWait2,
		EntrySize: 1, BusWidth: 16, WaitStates: ROMDefaultWaitStates,
		Read: AnyWidth, Write: NoAccess,
	},
	{
		Area: SRAM, Origin: OriginSRAM, Memtop: MemtopSRAM,
		EntrySize: SRAMEntrySize, BusWidth: 8, WaitStates: SRAMDefaultWaitStates,
		Read: Width8, Write: Width8,
	},
}

// Regions returns a copy of the region table, in address order.
func Regions() []Region {
	r := make([]Region, len(regions))
	copy(r, regions[:])
	return r
}

// GetRegion returns the Region for the Area. The boolean is false if the area
// is Undefined or otherwise unknown.
func GetRegion(area Area) (Region, bool) {
	for _, r := range regions {
		if r.Area == area {
			return r, true
		}
	}
	return Region{}, false
}

// mirror describes how a block of the address space repeats a region.
type mirror struct {
	area Area

	// the address block, inclusive
	from, to uint32

	// the address bits that select a location in the region
	mask uint32
}

// mirrors of the regions that repeat. the VRAM mirror is handled separately
// because the region is not a power of two in size
var mirrors = [...]mirror{
	{area: EWRAM, from: 0x0200_0000, to: 0x02ff_ffff, mask: EWRAMMirrorMask},
	{area: IWRAM, from: 0x0300_0000, to: 0x03ff_ffff, mask: IWRAMMirrorMask},
	{area: PALRAM, from: 0x0500_0000, to: 0x05ff_ffff, mask: SizePALRAM - 1},
	{area: OAM, from: 0x0700_0000, to: 0x07ff_ffff, mask: SizeOAM - 1},
	{area: SRAM, from: 0x0e00_0000, to: 0x0fff_ffff, mask: SRAMMirrorMask},
}

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// being used to look up a region.
//
// Addresses that fall outside of any region are returned unchanged with an
// area of Undefined.
func MapAddress(address uint32) (uint32, Area) {
	for _, m := range mirrors {
		if address >= m.from && address <= m.to {
			r, _ := GetRegion(m.area)
			return r.Origin | (address & m.mask), m.area
		}
	}

	// VRAM repeats every 128k. the upper 32k of each repeat mirrors the
	// object charblocks
	if address >= 0x0600_0000 && address <= 0x06ff_ffff {
		a := address & VRAMMirrorMask
		if a > SizeVRAM-1 {
			a -= VRAMUpperMirrorSize
		}
		return OriginVRAM | a, VRAM
	}

	for _, r := range regions {
		if r.Contains(address) {
			return address, r.Area
		}
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint32, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}
	for _, r := range regions {
		s.WriteString(r.String())
		s.WriteString("\n")
	}
	return s.String()
}
