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

// Package symbols helps keep track of address symbols. The primary structure
// for this is the Table type. There are two recommended ways of instantiating
// this type. NewTable() will create a table with the canonical symbols: the
// IO registers, the memory regions and the named locations of IWRAM, OAM,
// palette RAM and VRAM. For example, DISPCNT refers to address 0x04000000.
//
// The second way is with the ReadSymbolsFile() function. This will read a
// symbols file and add its contents to a canonical table. Each line of a
// symbols file is a symbol name followed by a hexadecimal address. Lines that
// cannot be parsed are ignored. Canonical symbols always take precedence.
//
// More than one symbol can share an address. ReverseSearch() returns all of
// them, in the order in which they were added.
//
// A Table can be written to an SQLite database with the Export() function for
// use by external tools.
package symbols
