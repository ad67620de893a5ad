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

// The origin and memtop for each area of memory. Size constants are stated
// independently of the origin and memtop values and are cross-checked below.
const (
	OriginBIOS = uint32(0x0000_0000)
	MemtopBIOS = uint32(0x0000_3fff)
	SizeBIOS   = uint32(16 * 1024)

	OriginEWRAM = uint32(0x0200_0000)
	MemtopEWRAM = uint32(0x0203_ffff)
	SizeEWRAM   = uint32(256 * 1024)

	OriginIWRAM = uint32(0x0300_0000)
	MemtopIWRAM = uint32(0x0300_7fff)
	SizeIWRAM   = uint32(32 * 1024)

	OriginIO = uint32(0x0400_0000)
	MemtopIO = uint32(0x0400_03ff)
	SizeIO   = uint32(1024)

	OriginPALRAM = uint32(0x0500_0000)
	MemtopPALRAM = uint32(0x0500_03ff)
	SizePALRAM   = uint32(1024)

	OriginVRAM = uint32(0x0600_0000)
	MemtopVRAM = uint32(0x0601_7fff)
	SizeVRAM   = uint32(96 * 1024)

	OriginOAM = uint32(0x0700_0000)
	MemtopOAM = uint32(0x0700_03ff)
	SizeOAM   = uint32(1024)

	OriginROMWait0 = uint32(0x0800_0000)
	MemtopROMWait0 = uint32(0x09ff_ffff)
	OriginROMWait1 = uint32(0x0a00_0000)
	MemtopROMWait1 = uint32(0x0bff_ffff)
	OriginROMWait2 = uint32(0x0c00_0000)
	MemtopROMWait2 = uint32(0x0dff_ffff)
	SizeROM        = uint32(32 * 1024 * 1024)

	OriginSRAM = uint32(0x0e00_0000)
	MemtopSRAM = uint32(0x0e00_ffff)
	SizeSRAM   = uint32(64 * 1024)
)

// memtop is always origin + size - 1
var (
	_ = [1]struct{}{}[MemtopBIOS-OriginBIOS+1-SizeBIOS]
	_ = [1]struct{}{}[MemtopEWRAM-OriginEWRAM+1-SizeEWRAM]
	_ = [1]struct{}{}[MemtopIWRAM-OriginIWRAM+1-SizeIWRAM]
	_ = [1]struct{}{}[MemtopIO-OriginIO+1-SizeIO]
	_ = [1]struct{}{}[MemtopPALRAM-OriginPALRAM+1-SizePALRAM]
	_ = [1]struct{}{}[MemtopVRAM-OriginVRAM+1-SizeVRAM]
	_ = [1]struct{}{}[MemtopOAM-OriginOAM+1-SizeOAM]
	_ = [1]struct{}{}[MemtopROMWait0-OriginROMWait0+1-SizeROM]
	_ = [1]struct{}{}[MemtopROMWait1-OriginROMWait1+1-SizeROM]
	_ = [1]struct{}{}[MemtopROMWait2-OriginROMWait2+1-SizeROM]
	_ = [1]struct{}{}[MemtopSRAM-OriginSRAM+1-SizeSRAM]
)

// no region overlaps the region that follows it
const (
	_ = uint32(OriginEWRAM - MemtopBIOS - 1)
	_ = uint32(OriginIWRAM - MemtopEWRAM - 1)
	_ = uint32(OriginIO - MemtopIWRAM - 1)
	_ = uint32(OriginPALRAM - MemtopIO - 1)
	_ = uint32(OriginVRAM - MemtopPALRAM - 1)
	_ = uint32(OriginOAM - MemtopVRAM - 1)
	_ = uint32(OriginROMWait0 - MemtopOAM - 1)
	_ = uint32(OriginROMWait1 - MemtopROMWait0 - 1)
	_ = uint32(OriginROMWait2 - MemtopROMWait1 - 1)
	_ = uint32(OriginSRAM - MemtopROMWait2 - 1)
)

// Mirror masks. The bits of an address in a mirror that select a location in
// the primary region.
const (
	EWRAMMirrorMask = SizeEWRAM - 1
	IWRAMMirrorMask = SizeIWRAM - 1
	SRAMMirrorMask  = SizeSRAM - 1

	// VRAM is mirrored every 128k. VRAMUpperMirrorSize is the span at the top
	// of each 128k block that repeats the 32k below it
	VRAMMirrorMask      = uint32(128*1024 - 1)
	VRAMUpperMirrorSize = uint32(32 * 1024)
)

// VRAM mirror block is the region plus the upper mirror
var _ = [1]struct{}{}[VRAMMirrorMask+1-SizeVRAM-VRAMUpperMirrorSize]

// EWRAM can be accessed byte by byte. EWRAMCount is the number of entries.
const (
	EWRAMEntrySize = 1
	EWRAMCount     = 256 * 1024
)

var _ = [1]struct{}{}[EWRAMEntrySize*EWRAMCount-SizeEWRAM]

// IWRAM can be accessed byte by byte. IWRAMCount is the number of entries.
const (
	IWRAMEntrySize = 1
	IWRAMCount     = 32 * 1024
)

var _ = [1]struct{}{}[IWRAMEntrySize*IWRAMCount-SizeIWRAM]

// ROM is mirrored to three different locations in the address space. Each
// mirror has its own wait state setting in the WAITCNT register. The default
// is 4 and it is never zero.
const (
	ROMWait0BaseAddr     = OriginROMWait0
	ROMWait1BaseAddr     = OriginROMWait1
	ROMWait2BaseAddr     = OriginROMWait2
	ROMDefaultWaitStates = 4
)

// SRAM must be accessed byte by byte. Some cartridges have less than 64k, in
// which case the memory is mirrored to fill the 64k.
//
// Reading a 16-bit or 32-bit value from SRAM produces the byte at the address
// repeated to the width of the read. Writing a 16-bit or 32-bit value writes
// the value rotated right by address*8 bits, truncated to a byte. SRAM cannot
// be accessed by DMA.
const (
	SRAMBaseAddr          = OriginSRAM
	SRAMEntrySize         = 1
	SRAMCount             = 64 * 1024
	SRAMDefaultWaitStates = 4
)

var _ = [1]struct{}{}[SRAMEntrySize*SRAMCount-SizeSRAM]
