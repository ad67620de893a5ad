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
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gbamap/curated"
)

// Error patterns.
const (
	SymbolsFileError = "symbols error: %v"
	DatabaseError    = "symbols database error: %v"
)

// ReadSymbolsFile returns a table containing the canonical symbols and the
// labels in the named file. Canonical symbols are always present, even if
// there is an error with the file.
//
// Each line of the file is a name followed by a hexadecimal address, with or
// without a 0x prefix. Lines starting with a semicolon are comments.
func ReadSymbolsFile(filename string) (*Table, error) {
	t := NewTable()

	f, err := os.Open(filename)
	if err != nil {
		return t, curated.Errorf(SymbolsFileError, err)
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// ignore uninteresting lines
		p := strings.Fields(scanner.Text())
		if len(p) < 2 || strings.HasPrefix(p[0], ";") {
			continue // for loop
		}

		a := strings.TrimPrefix(strings.ToLower(p[1]), "0x")
		a = strings.ReplaceAll(a, "_", "")
		address, err := strconv.ParseUint(a, 16, 32)
		if err != nil {
			continue // for loop
		}

		t.add(Symbol{Name: p[0], Address: uint32(address), Kind: Label})
	}

	if err := scanner.Err(); err != nil {
		return t, curated.Errorf(SymbolsFileError, err)
	}

	return t, nil
}
