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

// Package assert contains the invariant checks used by the hardware memory
// packages.
//
// There are two kinds of check. The first is the runtime bounds check,
// BoundCheck(), through which every indexing function passes its index before
// using it in any address arithmetic. An index that fails the check causes a
// panic with a curated error matching the OutOfBounds pattern. This is a
// programming error in the caller in the same way that indexing an array out
// of range is, and is not intended to be recovered from. Callers that are
// dealing with untrusted input should use InBounds() before calling an
// indexing function.
//
// The second kind of check is the static layout check. Go has no static
// assertion so two constant expression idioms are used. Both fail to compile
// if the condition does not hold, with the compiler reporting the line and
// the expression.
//
// Equality between two integer constants:
//
//	var _ = [1]struct{}{}[CharblockSize-Charblock8bppCount*Tile8bppSize]
//
// Any non-zero difference is a constant index out of range.
//
// Ordering between two typed unsigned constants (A <= B):
//
//	const _ = uint32(B - A)
//
// A negative difference overflows the unsigned type.
//
// These lines are placed next to the constants they check. Each package also
// restates its layout checks in a TestLayout() test so that the checks are
// visible in the test output.
package assert
