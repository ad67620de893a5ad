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

// IWRAM above IWRAMReserved is used by the BIOS. Each stack pointer starts at
// the top of its area of IWRAM and grows downwards.
const (
	IWRAMReserved = uint32(0x0300_7f00)

	// the address of the interrupt handler function
	IRQHandlerAddr = uint32(0x0300_7ffc)

	// the check flag for the IntrWait and VBlankIntrWait BIOS calls
	IRQIntrWaitCheckFlagAddr = uint32(0x0300_7ff8)

	// the last mirror of IRQIntrWaitCheckFlagAddr. it is a short offset from
	// the start of IO memory so it can be reached with an offset load/store
	IRQIntrWaitCheckFlagLastMirrorAddr = uint32(0x03ff_fff8)

	DefaultSPSvc  = uint32(0x0300_7fe0)
	DefaultSPIRQ  = uint32(0x0300_7fa0)
	DefaultSPUser = uint32(0x0300_7f00)
)

// the last mirror really is a mirror of the check flag
var _ = [1]struct{}{}[IRQIntrWaitCheckFlagLastMirrorAddr&IWRAMMirrorMask-(IRQIntrWaitCheckFlagAddr-OriginIWRAM)]

// the special locations are in the reserved area and the user stack begins
// at the reserved boundary
const (
	_ = uint32(IRQHandlerAddr - IWRAMReserved)
	_ = uint32(MemtopIWRAM - IRQHandlerAddr)
	_ = uint32(DefaultSPIRQ - IWRAMReserved)
	_ = uint32(DefaultSPSvc - DefaultSPIRQ)
)

var _ = [1]struct{}{}[DefaultSPUser-IWRAMReserved]

// Location is a named address that is not a register. Locations are mostly
// of use to symbol tables.
type Location struct {
	Name    string
	Address uint32
}

var locations = [...]Location{
	{Name: "IWRAM_RESERVED", Address: IWRAMReserved},
	{Name: "DEFAULT_SP_USER", Address: DefaultSPUser},
	{Name: "DEFAULT_SP_IRQ", Address: DefaultSPIRQ},
	{Name: "DEFAULT_SP_SVC", Address: DefaultSPSvc},
	{Name: "IRQ_INTR_WAIT_CHECK_FLAG", Address: IRQIntrWaitCheckFlagAddr},
	{Name: "IRQ_HANDLER", Address: IRQHandlerAddr},
	{Name: "IRQ_INTR_WAIT_CHECK_FLAG_LAST_MIRROR", Address: IRQIntrWaitCheckFlagLastMirrorAddr},
}

// Locations returns the list of special locations in IWRAM, in address
// order. Note that DEFAULT_SP_USER and IWRAM_RESERVED share an address.
func Locations() []Location {
	l := make([]Location, len(locations))
	copy(l, locations[:])
	return l
}
