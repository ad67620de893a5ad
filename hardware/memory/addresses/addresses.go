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

import (
	"fmt"
	"strings"
)

// Access indicates whether a register can be read, written or both.
type Access int

// List of valid Access values.
const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "read/write"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	}
	return "undefined"
}

// Register describes a single IO register.
type Register struct {
	Name    string
	Address uint32

	// size in bytes
	Size int

	Access Access
}

func (r Register) String() string {
	return fmt.Sprintf("%08x %s (%d, %s)", r.Address, r.Name, r.Size, r.Access)
}

// Registers returns a copy of the register table, in address order.
func Registers() []Register {
	r := make([]Register, len(registers))
	copy(r, registers[:])
	return r
}

// Lookup returns all registers that begin at the address. Most addresses have
// a single register but some have two and many have none.
func Lookup(address uint32) []Register {
	var r []Register
	for _, reg := range registers {
		if reg.Address == address {
			r = append(r, reg)
		}
	}
	return r
}

// Search returns the register with the name. Matching is case-insensitive.
func Search(name string) (Register, bool) {
	for _, reg := range registers {
		if strings.EqualFold(reg.Name, name) {
			return reg, true
		}
	}
	return Register{}, false
}
