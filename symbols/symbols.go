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
	"sort"
	"strings"

	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
	"github.com/jetsetilly/gbamap/logger"
)

// Kind indicates where a symbol originated.
type Kind int

// List of valid Kind values.
const (
	Register Kind = iota
	Region
	Location
	Label
)

func (k Kind) String() string {
	switch k {
	case Register:
		return "register"
	case Region:
		return "region"
	case Location:
		return "location"
	case Label:
		return "label"
	}
	return "undefined"
}

// Symbol is a named address.
type Symbol struct {
	Name    string
	Address uint32

	// size in bytes of the thing being named. zero if unknown
	Size uint32

	Kind Kind
}

func (s Symbol) String() string {
	return fmt.Sprintf("0x%08x -> %s", s.Address, s.Name)
}

// Table is a list of symbols in address order.
type Table struct {
	entries byAddress

	// index into entries for each upper case symbol name
	names map[string]int

	// the longest symbol name in the table
	maxWidth int
}

func newTable() *Table {
	return &Table{
		entries: make(byAddress, 0),
		names:   make(map[string]int),
	}
}

// add a symbol to the table. returns false if the name is already in use
func (t *Table) add(sym Symbol) bool {
	n := strings.ToUpper(sym.Name)
	if i, ok := t.names[n]; ok {
		logger.Logf(logger.Allow, "symbols", "%s already defined at 0x%08x", sym.Name, t.entries[i].Address)
		return false
	}

	for _, e := range t.entries {
		if e.Address == sym.Address {
			logger.Logf(logger.Allow, "symbols", "%s shares address 0x%08x with %s", sym.Name, sym.Address, e.Name)
			break
		}
	}

	t.entries = append(t.entries, sym)
	sort.Stable(t.entries)

	// the sort invalidates the name index
	for i := range t.entries {
		t.names[strings.ToUpper(t.entries[i].Name)] = i
	}

	if len(sym.Name) > t.maxWidth {
		t.maxWidth = len(sym.Name)
	}

	return true
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// MaxWidth returns the length of the longest symbol name.
func (t *Table) MaxWidth() int {
	return t.maxWidth
}

// Symbols returns a copy of every symbol in the table, in address order.
func (t *Table) Symbols() []Symbol {
	s := make([]Symbol, len(t.entries))
	copy(s, t.entries)
	return s
}

// Search returns the symbol with the name. Matching is case-insensitive.
func (t *Table) Search(name string) (Symbol, bool) {
	if i, ok := t.names[strings.ToUpper(name)]; ok {
		return t.entries[i], true
	}
	return Symbol{}, false
}

// ReverseSearch returns every symbol at the address. If there are none, the
// address is mapped to its primary address and the search is tried again.
func (t *Table) ReverseSearch(address uint32) []Symbol {
	r := t.reverseSearch(address)
	if len(r) == 0 {
		if ma, _ := memorymap.MapAddress(address); ma != address {
			r = t.reverseSearch(ma)
		}
	}
	return r
}

func (t *Table) reverseSearch(address uint32) []Symbol {
	var r []Symbol
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Address >= address
	})
	for ; i < len(t.entries) && t.entries[i].Address == address; i++ {
		r = append(r, t.entries[i])
	}
	return r
}

func (t *Table) String() string {
	s := strings.Builder{}
	for _, e := range t.entries {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}

// byAddress implements the sort.Interface.
type byAddress []Symbol

func (b byAddress) Len() int {
	return len(b)
}

func (b byAddress) Less(i, j int) bool {
	return b[i].Address < b[j].Address
}

func (b byAddress) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}
