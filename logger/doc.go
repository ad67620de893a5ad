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

// Package logger is the logging package for gbamap. Log entries are made
// with a tag and a detail string. Repeated entries are collapsed into a
// single entry with a repeat count.
//
// There is a single central log for the application, accessed through the
// package level functions. Additional instances can be created with
// NewLogger() but there is rarely any need.
//
//	logger.Logf(logger.Allow, "symbols", "%d symbols", n)
//
// The first argument is a Permission. The Allow value should be used if the
// entry should always be made.
package logger
