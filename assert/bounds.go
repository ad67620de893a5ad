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

package assert

import "github.com/jetsetilly/gbamap/curated"

// OutOfBounds is the curated pattern for the panic raised by BoundCheck().
const OutOfBounds = "index out of bounds: %d (bound %d)"

// BoundCheck returns index unchanged if 0 <= index < bound. Otherwise it
// panics with an OutOfBounds error.
func BoundCheck(index int, bound int) int {
	if !InBounds(index, bound) {
		panic(curated.Errorf(OutOfBounds, index, bound))
	}
	return index
}

// InBounds returns true if BoundCheck() would accept the index.
func InBounds(index int, bound int) bool {
	return index >= 0 && index < bound
}
