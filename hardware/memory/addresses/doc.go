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

// Package addresses contains the addresses of the IO registers. Most names
// are the same as in GBATEK [1], without any suffix.
//
// The registers are also described by the table returned by Registers(). This
// is used by the symbols package to create a symbol table.
//
// Register addresses are inert values. Nothing in this package reads or
// writes the registers. Note that several registers share an address (for
// example SIODATA32 and SIOMULTI0). This is how the hardware works and both
// names are kept. Lookup() returns all registers at an address.
//
// [1] https://problemkaputt.de/gbatek.htm#gbaiomap
package addresses
