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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gbamap/assert"
	"github.com/jetsetilly/gbamap/curated"
	"github.com/jetsetilly/gbamap/hardware/memory/oam"
	"github.com/jetsetilly/gbamap/hardware/memory/palram"
	"github.com/jetsetilly/gbamap/hardware/memory/vram"
)

// error patterns for the index command
const (
	unknownKind   = "unknown index kind: %s"
	wrongArgCount = "%s takes %d index values"
	notAnIndex    = "not an index value: %s"
	outOfRange    = "%s: %v"
)

// indexer describes one of the indexing functions of the memory map. the
// number of bounds is the number of arguments the function takes.
type indexer struct {
	kind   string
	args   string
	bounds []int
	index  func(i []int) uint32
}

var indexers = []indexer{
	{kind: "objattr", args: "OBJ", bounds: []int{oam.ObjAttrCount},
		index: func(i []int) uint32 { return oam.IndexObjAttr(i[0]) }},
	{kind: "objattr1", args: "OBJ", bounds: []int{oam.ObjAttrCount},
		index: func(i []int) uint32 { return oam.IndexObjAttr1(i[0]) }},
	{kind: "objattr2", args: "OBJ", bounds: []int{oam.ObjAttrCount},
		index: func(i []int) uint32 { return oam.IndexObjAttr2(i[0]) }},
	{kind: "affine", args: "PARAM", bounds: []int{oam.ObjAffineCount},
		index: func(i []int) uint32 { return oam.IndexObjAffineParam(i[0]) }},
	{kind: "affinepb", args: "PARAM", bounds: []int{oam.ObjAffineCount},
		index: func(i []int) uint32 { return oam.IndexObjAffinePB(i[0]) }},
	{kind: "affinepc", args: "PARAM", bounds: []int{oam.ObjAffineCount},
		index: func(i []int) uint32 { return oam.IndexObjAffinePC(i[0]) }},
	{kind: "affinepd", args: "PARAM", bounds: []int{oam.ObjAffineCount},
		index: func(i []int) uint32 { return oam.IndexObjAffinePD(i[0]) }},
	{kind: "bgpal4", args: "PALBANK ENTRY", bounds: []int{palram.PalbankCount, palram.PalbankEntryCount},
		index: func(i []int) uint32 { return palram.IndexBGPalette4bpp(i[0], i[1]) }},
	{kind: "bgpal8", args: "ENTRY", bounds: []int{palram.BGPaletteRAMCount},
		index: func(i []int) uint32 { return palram.IndexBGPalette8bpp(i[0]) }},
	{kind: "objpal4", args: "PALBANK ENTRY", bounds: []int{palram.PalbankCount, palram.PalbankEntryCount},
		index: func(i []int) uint32 { return palram.IndexOBJPalette4bpp(i[0], i[1]) }},
	{kind: "objpal8", args: "ENTRY", bounds: []int{palram.OBJPaletteRAMCount},
		index: func(i []int) uint32 { return palram.IndexOBJPalette8bpp(i[0]) }},
	{kind: "charblock", args: "CHARBLOCK", bounds: []int{vram.CharblockBGCount},
		index: func(i []int) uint32 { return vram.IndexBGCharblock(i[0]).Addr() }},
	{kind: "tile4", args: "CHARBLOCK TILE", bounds: []int{vram.CharblockBGCount, vram.Charblock4bppCount},
		index: func(i []int) uint32 { return vram.IndexBGCharblock(i[0]).IndexTile4bpp(i[1]) }},
	{kind: "tile8", args: "CHARBLOCK TILE", bounds: []int{vram.CharblockBGCount, vram.Charblock8bppCount},
		index: func(i []int) uint32 { return vram.IndexBGCharblock(i[0]).IndexTile8bpp(i[1]) }},
	{kind: "objtile", args: "TILE", bounds: []int{vram.CharblockOBJTileCount},
		index: func(i []int) uint32 { return vram.IndexOBJTile(i[0]) }},
	{kind: "screenblock", args: "SCREENBLOCK", bounds: []int{vram.ScreenblockCount},
		index: func(i []int) uint32 { return vram.IndexScreenblock(i[0]) }},
}

func indexDescription() string {
	s := strings.Builder{}
	s.WriteString("Index kinds:\n\n")
	for _, ix := range indexers {
		s.WriteString(fmt.Sprintf("   %-12s %s\n", ix.kind, ix.args))
	}
	return s.String()
}

// index validates the arguments against the bounds of the named indexer
// before calling it. user input never causes the indexing functions to panic.
func index(kind string, args []string) (uint32, error) {
	for _, ix := range indexers {
		if !strings.EqualFold(ix.kind, kind) {
			continue // for loop
		}

		if len(args) != len(ix.bounds) {
			return 0, curated.Errorf(wrongArgCount, ix.kind, len(ix.bounds))
		}

		idx := make([]int, len(args))
		for n, a := range args {
			v, err := parseIndex(a)
			if err != nil {
				return 0, curated.Errorf(notAnIndex, a)
			}
			idx[n] = int(v)
			if !assert.InBounds(idx[n], ix.bounds[n]) {
				return 0, curated.Errorf(outOfRange, ix.kind, curated.Errorf(assert.OutOfBounds, idx[n], ix.bounds[n]))
			}
		}

		return ix.index(idx), nil
	}

	return 0, curated.Errorf(unknownKind, kind)
}

// parseIndex accepts decimal values and hexadecimal values with a 0x prefix.
func parseIndex(s string) (uint64, error) {
	if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		return strconv.ParseUint(h, 16, 16)
	}
	return strconv.ParseUint(s, 10, 16)
}

// parseAddress accepts hexadecimal values with or without a 0x prefix.
// underscores are permitted as digit separators.
func parseAddress(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 16, 32)
	return uint32(v), err
}
