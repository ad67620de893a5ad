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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
	"github.com/jetsetilly/gbamap/test"
)

const validMemMap = `00000000 -> 00003fff	BIOS
02000000 -> 0203ffff	EWRAM
03000000 -> 03007fff	IWRAM
04000000 -> 040003ff	IO
05000000 -> 050003ff	PALRAM
06000000 -> 06017fff	VRAM
07000000 -> 070003ff	OAM
08000000 -> 09ffffff	ROM (wait 0)
0a000000 -> 0bffffff	ROM (wait 1)
0c000000 -> 0dffffff	ROM (wait 2)
0e000000 -> 0e00ffff	SRAM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestRegions(t *testing.T) {
	regions := memorymap.Regions()
	test.DemandEquality(t, len(regions), 11)

	for i, r := range regions {
		// areas are listed in the same order as the Area enumeration
		test.ExpectEquality(t, r.Area, memorymap.Area(i+1))

		test.ExpectSuccess(t, r.Memtop > r.Origin, r.Area)
		test.ExpectEquality(t, r.Size()%r.EntrySize, 0, r.Area)
		test.ExpectSuccess(t, r.WaitStates >= 0, r.Area)
		test.ExpectInequality(t, r.Read, memorymap.NoAccess, r.Area)

		// no overlap with the following region
		if i < len(regions)-1 {
			test.ExpectSuccess(t, r.Memtop < regions[i+1].Origin, r.Area)
		}

		g, ok := memorymap.GetRegion(r.Area)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, g, r)
	}

	// modifying the returned slice does not change the table
	regions[0].Origin = 0xffff_ffff
	test.ExpectEquality(t, memorymap.Regions()[0].Origin, memorymap.OriginBIOS)

	_, ok := memorymap.GetRegion(memorymap.Undefined)
	test.ExpectFailure(t, ok)
}

func TestRegionSizes(t *testing.T) {
	expected := map[memorymap.Area]uint32{
		memorymap.BIOS:     16 * 1024,
		memorymap.EWRAM:    256 * 1024,
		memorymap.IWRAM:    32 * 1024,
		memorymap.IO:       1024,
		memorymap.PALRAM:   1024,
		memorymap.VRAM:     96 * 1024,
		memorymap.OAM:      1024,
		memorymap.ROMWait0: 32 * 1024 * 1024,
		memorymap.ROMWait1: 32 * 1024 * 1024,
		memorymap.ROMWait2: 32 * 1024 * 1024,
		memorymap.SRAM:     64 * 1024,
	}
	for _, r := range memorymap.Regions() {
		test.ExpectEquality(t, r.Size(), expected[r.Area], r.Area)
	}
}

func TestAccessQuirks(t *testing.T) {
	sram, _ := memorymap.GetRegion(memorymap.SRAM)
	test.ExpectEquality(t, sram.Read, memorymap.Width8)
	test.ExpectEquality(t, sram.Write, memorymap.Width8)
	test.ExpectEquality(t, sram.BusWidth, 8)
	test.ExpectSuccess(t, sram.WaitStates > 0)

	for _, a := range []memorymap.Area{memorymap.PALRAM, memorymap.VRAM, memorymap.OAM} {
		r, _ := memorymap.GetRegion(a)
		test.ExpectEquality(t, r.Write&memorymap.Width8, memorymap.NoAccess, a)
		test.ExpectEquality(t, r.EntrySize, 2, a)
	}

	for _, a := range []memorymap.Area{memorymap.ROMWait0, memorymap.ROMWait1, memorymap.ROMWait2} {
		r, _ := memorymap.GetRegion(a)
		test.ExpectEquality(t, r.Write, memorymap.NoAccess, a)
		test.ExpectEquality(t, r.WaitStates, memorymap.ROMDefaultWaitStates, a)
	}
}

func TestWidths(t *testing.T) {
	test.ExpectEquality(t, memorymap.AnyWidth.String(), "8/16/32")
	test.ExpectEquality(t, (memorymap.Width16 | memorymap.Width32).String(), "16/32")
	test.ExpectEquality(t, memorymap.NoAccess.String(), "-")
}

func TestMapAddress(t *testing.T) {
	type mapping struct {
		address uint32
		mapped  uint32
		area    memorymap.Area
	}

	mappings := []mapping{
		{0x0000_0000, 0x0000_0000, memorymap.BIOS},
		{0x0000_3fff, 0x0000_3fff, memorymap.BIOS},
		{0x0000_4000, 0x0000_4000, memorymap.Undefined},
		{0x0200_0010, 0x0200_0010, memorymap.EWRAM},
		{0x0204_0010, 0x0200_0010, memorymap.EWRAM},
		{0x02ff_ffff, 0x0203_ffff, memorymap.EWRAM},
		{0x0300_8000, 0x0300_0000, memorymap.IWRAM},
		{0x03ff_fff8, 0x0300_7ff8, memorymap.IWRAM},
		{0x0400_0000, 0x0400_0000, memorymap.IO},
		{0x0400_0400, 0x0400_0400, memorymap.Undefined},
		{0x0500_0400, 0x0500_0000, memorymap.PALRAM},
		{0x0601_7fff, 0x0601_7fff, memorymap.VRAM},
		{0x0601_8000, 0x0601_0000, memorymap.VRAM},
		{0x0601_ffff, 0x0601_7fff, memorymap.VRAM},
		{0x0602_0000, 0x0600_0000, memorymap.VRAM},
		{0x0700_0400, 0x0700_0000, memorymap.OAM},
		{0x0800_00c0, 0x0800_00c0, memorymap.ROMWait0},
		{0x0a00_00c0, 0x0a00_00c0, memorymap.ROMWait1},
		{0x0c00_00c0, 0x0c00_00c0, memorymap.ROMWait2},
		{0x0e01_0005, 0x0e00_0005, memorymap.SRAM},
		{0x0fff_ffff, 0x0e00_ffff, memorymap.SRAM},
		{0x1000_0000, 0x1000_0000, memorymap.Undefined},
	}

	for _, m := range mappings {
		ma, area := memorymap.MapAddress(m.address)
		test.ExpectEquality(t, ma, m.mapped, m.address)
		test.ExpectEquality(t, area, m.area, m.address)
		test.ExpectSuccess(t, memorymap.IsArea(m.address, m.area), m.address)
	}
}

func TestLocations(t *testing.T) {
	locations := memorymap.Locations()
	test.DemandEquality(t, len(locations), 7)

	for i, l := range locations {
		ma, area := memorymap.MapAddress(l.Address)
		test.ExpectEquality(t, area, memorymap.IWRAM, l.Name)
		test.ExpectSuccess(t, ma >= memorymap.IWRAMReserved, l.Name)
		if i > 0 {
			test.ExpectSuccess(t, l.Address >= locations[i-1].Address, l.Name)
		}
	}

	ma, _ := memorymap.MapAddress(memorymap.IRQIntrWaitCheckFlagLastMirrorAddr)
	test.ExpectEquality(t, ma, memorymap.IRQIntrWaitCheckFlagAddr)
}
