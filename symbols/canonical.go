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

package symbols

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gbamap/hardware/memory/addresses"
	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
	"github.com/jetsetilly/gbamap/hardware/memory/oam"
	"github.com/jetsetilly/gbamap/hardware/memory/palram"
	"github.com/jetsetilly/gbamap/hardware/memory/vram"
)

// NewTable returns a table containing the canonical symbols.
func NewTable() *Table {
	t := newTable()
	t.addCanonical()
	return t
}

// regionName converts the area name to something suitable for a symbol.
func regionName(a memorymap.Area) string {
	switch a {
	case memorymap.ROMWait0:
		return "ROM_WAIT0"
	case memorymap.ROMWait1:
		return "ROM_WAIT1"
	case memorymap.ROMWait2:
		return "ROM_WAIT2"
	}
	return strings.ToUpper(a.String())
}

func (t *Table) addCanonical() {
	for _, r := range memorymap.Regions() {
		t.add(Symbol{Name: regionName(r.Area), Address: r.Origin, Size: r.Size(), Kind: Region})
	}

	for _, r := range addresses.Registers() {
		t.add(Symbol{Name: r.Name, Address: r.Address, Size: uint32(r.Size), Kind: Register})
	}

	for _, l := range memorymap.Locations() {
		t.add(Symbol{Name: l.Name, Address: l.Address, Kind: Location})
	}

	t.add(Symbol{Name: "BG_PALETTE", Address: palram.BGPaletteRAMAddr,
		Size: palram.BGPaletteRAMEntrySize * palram.BGPaletteRAMCount, Kind: Location})
	t.add(Symbol{Name: "BACKDROP_COLOR", Address: palram.BackdropColorAddr,
		Size: palram.BGPaletteRAMEntrySize, Kind: Location})
	t.add(Symbol{Name: "OBJ_PALETTE", Address: palram.OBJPaletteRAMAddr,
		Size: palram.OBJPaletteRAMEntrySize * palram.OBJPaletteRAMCount, Kind: Location})

	t.add(Symbol{Name: "OBJ_ATTR0", Address: oam.ObjAttr0BaseAddr, Size: 2, Kind: Location})
	t.add(Symbol{Name: "OBJ_ATTR1", Address: oam.ObjAttr1BaseAddr, Size: 2, Kind: Location})
	t.add(Symbol{Name: "OBJ_ATTR2", Address: oam.ObjAttr2BaseAddr, Size: 2, Kind: Location})
	t.add(Symbol{Name: "OBJ_AFFINE_PA", Address: oam.ObjAffinePABaseAddr, Size: 2, Kind: Location})
	t.add(Symbol{Name: "OBJ_AFFINE_PB", Address: oam.ObjAffinePBBaseAddr, Size: 2, Kind: Location})
	t.add(Symbol{Name: "OBJ_AFFINE_PC", Address: oam.ObjAffinePCBaseAddr, Size: 2, Kind: Location})
	t.add(Symbol{Name: "OBJ_AFFINE_PD", Address: oam.ObjAffinePDBaseAddr, Size: 2, Kind: Location})

	for i := 0; i < vram.CharblockBGCount; i++ {
		t.add(Symbol{Name: fmt.Sprintf("CHARBLOCK_BG%d", i), Address: vram.IndexBGCharblock(i).Addr(),
			Size: vram.CharblockSize, Kind: Location})
	}
	t.add(Symbol{Name: "CHARBLOCK_OBJ", Address: vram.CharblockOBJBaseAddr,
		Size: vram.CharblockSize * vram.CharblockOBJCount, Kind: Location})

	t.add(Symbol{Name: "VRAM_FRAME0", Address: vram.VRAMFrame0BaseAddr, Kind: Location})
	t.add(Symbol{Name: "VRAM_MODE4_FRAME1", Address: vram.VRAMMode4Frame1BaseAddr, Kind: Location})
}
