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

// canonical list of IO registers in address order. aliased addresses are
// listed in the order that GBATEK lists them
var registers = [...]Register{
	{Name: "DISPCNT", Address: DISPCNT, Size: 2, Access: ReadWrite},
	{Name: "DISPSTAT", Address: DISPSTAT, Size: 2, Access: ReadWrite},
	{Name: "VCOUNT", Address: VCOUNT, Size: 2, Access: ReadOnly},
	{Name: "BG0CNT", Address: BG0CNT, Size: 2, Access: ReadWrite},
	{Name: "BG1CNT", Address: BG1CNT, Size: 2, Access: ReadWrite},
	{Name: "BG2CNT", Address: BG2CNT, Size: 2, Access: ReadWrite},
	{Name: "BG3CNT", Address: BG3CNT, Size: 2, Access: ReadWrite},
	{Name: "BG0HOFS", Address: BG0HOFS, Size: 2, Access: WriteOnly},
	{Name: "BG0VOFS", Address: BG0VOFS, Size: 2, Access: WriteOnly},
	{Name: "BG1HOFS", Address: BG1HOFS, Size: 2, Access: WriteOnly},
	{Name: "BG1VOFS", Address: BG1VOFS, Size: 2, Access: WriteOnly},
	{Name: "BG2HOFS", Address: BG2HOFS, Size: 2, Access: WriteOnly},
	{Name: "BG2VOFS", Address: BG2VOFS, Size: 2, Access: WriteOnly},
	{Name: "BG3HOFS", Address: BG3HOFS, Size: 2, Access: WriteOnly},
	{Name: "BG3VOFS", Address: BG3VOFS, Size: 2, Access: WriteOnly},
	{Name: "BG2PA", Address: BG2PA, Size: 2, Access: WriteOnly},
	{Name: "BG2PB", Address: BG2PB, Size: 2, Access: WriteOnly},
	{Name: "BG2PC", Address: BG2PC, Size: 2, Access: WriteOnly},
	{Name: "BG2PD", Address: BG2PD, Size: 2, Access: WriteOnly},
	{Name: "BG2X", Address: BG2X, Size: 4, Access: WriteOnly},
	{Name: "BG2Y", Address: BG2Y, Size: 4, Access: WriteOnly},
	{Name: "BG3PA", Address: BG3PA, Size: 2, Access: WriteOnly},
	{Name: "BG3PB", Address: BG3PB, Size: 2, Access: WriteOnly},
	{Name: "BG3PC", Address: BG3PC, Size: 2, Access: WriteOnly},
	{Name: "BG3PD", Address: BG3PD, Size: 2, Access: WriteOnly},
	{Name: "BG3X", Address: BG3X, Size: 4, Access: WriteOnly},
	{Name: "BG3Y", Address: BG3Y, Size: 4, Access: WriteOnly},
	{Name: "WIN0H", Address: WIN0H, Size: 2, Access: WriteOnly},
	{Name: "WIN1H", Address: WIN1H, Size: 2, Access: WriteOnly},
	{Name: "WIN0V", Address: WIN0V, Size: 2, Access: WriteOnly},
	{Name: "WIN1V", Address: WIN1V, Size: 2, Access: WriteOnly},
	{Name: "WININ", Address: WININ, Size: 2, Access: ReadWrite},
	{Name: "WINOUT", Address: WINOUT, Size: 2, Access: ReadWrite},
	{Name: "MOSAIC", Address: MOSAIC, Size: 2, Access: WriteOnly},
	{Name: "BLDCNT", Address: BLDCNT, Size: 2, Access: ReadWrite},
	{Name: "BLDALPHA", Address: BLDALPHA, Size: 2, Access: ReadWrite},
	{Name: "BLDY", Address: BLDY, Size: 2, Access: WriteOnly},
	{Name: "SOUND1CNT_L", Address: SOUND1CNT_L, Size: 2, Access: ReadWrite},
	{Name: "SOUND1CNT_H", Address: SOUND1CNT_H, Size: 2, Access: ReadWrite},
	{Name: "SOUND1CNT_X", Address: SOUND1CNT_X, Size: 2, Access: ReadWrite},
	{Name: "SOUND2CNT_L", Address: SOUND2CNT_L, Size: 2, Access: ReadWrite},
	{Name: "SOUND2CNT_H", Address: SOUND2CNT_H, Size: 2, Access: ReadWrite},
	{Name: "SOUND3CNT_L", Address: SOUND3CNT_L, Size: 2, Access: ReadWrite},
	{Name: "SOUND3CNT_H", Address: SOUND3CNT_H, Size: 2, Access: ReadWrite},
	{Name: "SOUND3CNT_X", Address: SOUND3CNT_X, Size: 2, Access: ReadWrite},
	{Name: "SOUND4CNT_L", Address: SOUND4CNT_L, Size: 2, Access: ReadWrite},
	{Name: "SOUND4CNT_H", Address: SOUND4CNT_H, Size: 2, Access: ReadWrite},
	{Name: "SOUNDCNT_L", Address: SOUNDCNT_L, Size: 2, Access: ReadWrite},
	{Name: "SOUNDCNT_H", Address: SOUNDCNT_H, Size: 2, Access: ReadWrite},
	{Name: "SOUNDCNT_X", Address: SOUNDCNT_X, Size: 2, Access: ReadWrite},
	{Name: "WAVE_RAM", Address: WAVE_RAM, Size: 16, Access: ReadWrite},
	{Name: "FIFO_A", Address: FIFO_A, Size: 4, Access: WriteOnly},
	{Name: "FIFO_B", Address: FIFO_B, Size: 4, Access: WriteOnly},
	{Name: "DMA0SAD", Address: DMA0SAD, Size: 4, Access: WriteOnly},
	{Name: "DMA0DAD", Address: DMA0DAD, Size: 4, Access: WriteOnly},
	{Name: "DMA0CNT_L", Address: DMA0CNT_L, Size: 2, Access: WriteOnly},
	{Name: "DMA0CNT_H", Address: DMA0CNT_H, Size: 2, Access: ReadWrite},
	{Name: "DMA1SAD", Address: DMA1SAD, Size: 4, Access: WriteOnly},
	{Name: "DMA1DAD", Address: DMA1DAD, Size: 4, Access: WriteOnly},
	{Name: "DMA1CNT_L", Address: DMA1CNT_L, Size: 2, Access: WriteOnly},
	{Name: "DMA1CNT_H", Address: DMA1CNT_H, Size: 2, Access: ReadWrite},
	{Name: "DMA2SAD", Address: DMA2SAD, Size: 4, Access: WriteOnly},
	{Name: "DMA2DAD", Address: DMA2DAD, Size: 4, Access: WriteOnly},
	{Name: "DMA2CNT_L", Address: DMA2CNT_L, Size: 2, Access: WriteOnly},
	{Name: "DMA2CNT_H", Address: DMA2CNT_H, Size: 2, Access: ReadWrite},
	{Name: "DMA3SAD", Address: DMA3SAD, Size: 4, Access: WriteOnly},
	{Name: "DMA3DAD", Address: DMA3DAD, Size: 4, Access: WriteOnly},
	{Name: "DMA3CNT_L", Address: DMA3CNT_L, Size: 2, Access: WriteOnly},
	{Name: "DMA3CNT_H", Address: DMA3CNT_H, Size: 2, Access: ReadWrite},
	{Name: "TM0CNT_L", Address: TM0CNT_L, Size: 2, Access: ReadWrite},
	{Name: "TM0CNT_H", Address: TM0CNT_H, Size: 2, Access: ReadWrite},
	{Name: "TM1CNT_L", Address: TM1CNT_L, Size: 2, Access: ReadWrite},
	{Name: "TM1CNT_H", Address: TM1CNT_H, Size: 2, Access: ReadWrite},
	{Name: "TM2CNT_L", Address: TM2CNT_L, Size: 2, Access: ReadWrite},
	{Name: "TM2CNT_H", Address: TM2CNT_H, Size: 2, Access: ReadWrite},
	{Name: "TM3CNT_L", Address: TM3CNT_L, Size: 2, Access: ReadWrite},
	{Name: "TM3CNT_H", Address: TM3CNT_H, Size: 2, Access: ReadWrite},
	{Name: "SIODATA32", Address: SIODATA32, Size: 4, Access: ReadWrite},
	{Name: "SIOMULTI0", Address: SIOMULTI0, Size: 2, Access: ReadWrite},
	{Name: "SIOMULTI1", Address: SIOMULTI1, Size: 2, Access: ReadWrite},
	{Name: "SIOMULTI2", Address: SIOMULTI2, Size: 2, Access: ReadWrite},
	{Name: "SIOMULTI3", Address: SIOMULTI3, Size: 2, Access: ReadWrite},
	{Name: "SIOCNT", Address: SIOCNT, Size: 2, Access: ReadWrite},
	{Name: "SIOMLT_SEND", Address: SIOMLT_SEND, Size: 2, Access: ReadWrite},
	{Name: "SIODATA8", Address: SIODATA8, Size: 2, Access: ReadWrite},
	{Name: "KEYINPUT", Address: KEYINPUT, Size: 2, Access: ReadOnly},
	{Name: "KEYCNT", Address: KEYCNT, Size: 2, Access: ReadWrite},
	{Name: "RCNT", Address: RCNT, Size: 2, Access: ReadWrite},
	{Name: "JOYCNT", Address: JOYCNT, Size: 2, Access: ReadWrite},
	{Name: "JOY_RECV", Address: JOY_RECV, Size: 4, Access: ReadWrite},
	{Name: "JOY_TRANS", Address: JOY_TRANS, Size: 4, Access: ReadWrite},
	{Name: "JOYSTAT", Address: JOYSTAT, Size: 2, Access: ReadWrite},
	{Name: "IE", Address: IE, Size: 2, Access: ReadWrite},
	{Name: "IF", Address: IF, Size: 2, Access: ReadWrite},
	{Name: "WAITCNT", Address: WAITCNT, Size: 2, Access: ReadWrite},
	{Name: "IME", Address: IME, Size: 2, Access: ReadWrite},
}
