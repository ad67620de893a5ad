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

package addresses

// Display control and status.
const (
	DISPCNT  = uint32(0x0400_0000)
	DISPSTAT = uint32(0x0400_0004)
	VCOUNT   = uint32(0x0400_0006)
)

// Background control. BG0 and BG1 are used in video modes 0 and 1, BG2 in
// modes 0, 1 and 2, and BG3 in modes 0 and 2.
const (
	BG0CNT = uint32(0x0400_0008)
	BG1CNT = uint32(0x0400_000a)
	BG2CNT = uint32(0x0400_000c)
	BG3CNT = uint32(0x0400_000e)
)

// Text mode scroll offsets. BG0 and BG1 in video modes 0 and 1, BG2 and BG3
// in mode 0 only.
const (
	BG0HOFS = uint32(0x0400_0010)
	BG0VOFS = uint32(0x0400_0012)
	BG1HOFS = uint32(0x0400_0014)
	BG1VOFS = uint32(0x0400_0016)
	BG2HOFS = uint32(0x0400_0018)
	BG2VOFS = uint32(0x0400_001a)
	BG3HOFS = uint32(0x0400_001c)
	BG3VOFS = uint32(0x0400_001e)
)

// Background affine parameters and reference points. BG2 in video modes 1
// and 2 (the reference point is also used by the bitmap modes 3, 4 and 5).
// BG3 in video mode 2 only.
const (
	BG2PA = uint32(0x0400_0020)
	BG2PB = uint32(0x0400_0022)
	BG2PC = uint32(0x0400_0024)
	BG2PD = uint32(0x0400_0026)
	BG2X  = uint32(0x0400_0028)
	BG2Y  = uint32(0x0400_002c)
	BG3PA = uint32(0x0400_0030)
	BG3PB = uint32(0x0400_0032)
	BG3PC = uint32(0x0400_0034)
	BG3PD = uint32(0x0400_0036)
	BG3X  = uint32(0x0400_0038)
	BG3Y  = uint32(0x0400_003c)
)

// Windows.
const (
	WIN0H  = uint32(0x0400_0040)
	WIN1H  = uint32(0x0400_0042)
	WIN0V  = uint32(0x0400_0044)
	WIN1V  = uint32(0x0400_0046)
	WININ  = uint32(0x0400_0048)
	WINOUT = uint32(0x0400_004a)
)

// Mosaic and blending.
const (
	MOSAIC   = uint32(0x0400_004c)
	BLDCNT   = uint32(0x0400_0050)
	BLDALPHA = uint32(0x0400_0052)
	BLDY     = uint32(0x0400_0054)
)

// Sound. Some documents use alternative names for these registers.
const (
	SOUND1CNT_L = uint32(0x0400_0060)
	SOUND1CNT_H = uint32(0x0400_0062)
	SOUND1CNT_X = uint32(0x0400_0064)
	SOUND2CNT_L = uint32(0x0400_0068)
	SOUND2CNT_H = uint32(0x0400_006c)
	SOUND3CNT_L = uint32(0x0400_0070)
	SOUND3CNT_H = uint32(0x0400_0072)
	SOUND3CNT_X = uint32(0x0400_0074)
	SOUND4CNT_L = uint32(0x0400_0078)
	SOUND4CNT_H = uint32(0x0400_007c)
	SOUNDCNT_L  = uint32(0x0400_0080)
	SOUNDCNT_H  = uint32(0x0400_0082)
	SOUNDCNT_X  = uint32(0x0400_0084)
	WAVE_RAM    = uint32(0x0400_0090)
	FIFO_A      = uint32(0x0400_00a0)
	FIFO_B      = uint32(0x0400_00a4)
)

// DMA channels 0 to 3.
const (
	DMA0SAD   = uint32(0x0400_00b0)
	DMA0DAD   = uint32(0x0400_00b4)
	DMA0CNT_L = uint32(0x0400_00b8)
	DMA0CNT_H = uint32(0x0400_00ba)
	DMA1SAD   = uint32(0x0400_00bc)
	DMA1DAD   = uint32(0x0400_00c0)
	DMA1CNT_L = uint32(0x0400_00c4)
	DMA1CNT_H = uint32(0x0400_00c6)
	DMA2SAD   = uint32(0x0400_00c8)
	DMA2DAD   = uint32(0x0400_00cc)
	DMA2CNT_L = uint32(0x0400_00d0)
	DMA2CNT_H = uint32(0x0400_00d2)
	DMA3SAD   = uint32(0x0400_00d4)
	DMA3DAD   = uint32(0x0400_00d8)
	DMA3CNT_L = uint32(0x0400_00dc)
	DMA3CNT_H = uint32(0x0400_00de)
)

// Timers. The counter register reads the current count but writes the reload
// value.
const (
	TM0CNT_L = uint32(0x0400_0100)
	TM0CNT_H = uint32(0x0400_0102)
	TM1CNT_L = uint32(0x0400_0104)
	TM1CNT_H = uint32(0x0400_0106)
	TM2CNT_L = uint32(0x0400_0108)
	TM2CNT_H = uint32(0x0400_010a)
	TM3CNT_L = uint32(0x0400_010c)
	TM3CNT_H = uint32(0x0400_010e)
)

// Serial communication. Some registers share an address and which name
// applies depends on the serial mode. The aliasing is a hardware fact and
// both names are kept.
const (
	SIODATA32   = uint32(0x0400_0120)
	SIOMULTI0   = uint32(0x0400_0120)
	SIOMULTI1   = uint32(0x0400_0122)
	SIOMULTI2   = uint32(0x0400_0124)
	SIOMULTI3   = uint32(0x0400_0126)
	SIOCNT      = uint32(0x0400_0128)
	SIOMLT_SEND = uint32(0x0400_012a)
	SIODATA8    = uint32(0x0400_012a)
)

// Keypad. KEYINPUT bits are low active (0 when pressed). Bit order is A, B,
// Select, Start, Right, Left, Up, Down, R, L. KEYCNT uses the same ordering.
const (
	KEYINPUT = uint32(0x0400_0130)
	KEYCNT   = uint32(0x0400_0132)
)

// Serial communication, general purpose and JOY bus modes.
const (
	RCNT      = uint32(0x0400_0134)
	JOYCNT    = uint32(0x0400_0140)
	JOY_RECV  = uint32(0x0400_0150)
	JOY_TRANS = uint32(0x0400_0154)
	JOYSTAT   = uint32(0x0400_0158)
)

// Interrupt and wait state control. To acknowledge an interrupt write a 1 to
// the bit in IF. When waiting with IntrWait or VBlankIntrWait the same bits
// must also be OR-ed into memorymap.IRQIntrWaitCheckFlagAddr. IME bit 0 is
// the master enable and is forced on by those BIOS calls.
const (
	IE      = uint32(0x0400_0200)
	IF      = uint32(0x0400_0202)
	WAITCNT = uint32(0x0400_0204)
	IME     = uint32(0x0400_0208)
)
