// blockparty.go - a solver for the Block Party look-around puzzle.
// Copyright (C) 2026 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

import (
	"fmt"
	"sort"
	"strings"
)

/*

Print forms of cell values

*/

var (
	valueStrings = []string{
		" ", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
		"U", "V", "W", "X", "Y", "Z",
	}
	nonValueString = "?"
	bigValueString = "!"
)

func vstr(i int) string {
	if i < 0 {
		return nonValueString
	}
	if i < len(valueStrings) {
		return valueStrings[i]
	}
	return bigValueString
}

/*

Pretty-printed boards

The picture renders the grid at double resolution: cell centers
land on odd/odd character positions and hold the cell's value
(or a space when unknown), everything else is either a wall
block or open floor.  A wall appears on the outer border and
wherever the character position separates cells of different
segments; a corner stays open only when all four touching cells
share a segment.  Wall placement depends only on the geometry,
so solving a board never moves a wall.

*/

const (
	wallString = "▓" // dark shade block
	openString = " "
)

// String gives the character-grid view of the board, top row
// first.  Rows are numbered bottom-up, so row rows-1 prints
// first.
func (b *Board) String() string {
	g := b.geometry
	var sb strings.Builder
	for y := g.rows * 2; y >= 0; y-- {
		for x := 0; x <= g.cols*2; x++ {
			sb.WriteString(b.renderPos(x, y))
		}
		if y > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderPos picks the character for one double-resolution
// position.
func (b *Board) renderPos(x, y int) string {
	g := b.geometry
	if x == 0 || y == 0 || x == g.cols*2 || y == g.rows*2 {
		return wallString
	}
	xEven, yEven := x%2 == 0, y%2 == 0
	switch {
	case !xEven && !yEven:
		val, ok := b.ValueAt(Position{x / 2, y / 2})
		if !ok {
			return openString
		}
		return vstr(val)
	case xEven && yEven:
		// corner between cells, all on the grid since the border
		// case is already handled
		cx, cy := x/2, y/2
		same, err := g.SameSegment(
			Position{cx, cy - 1}, Position{cx, cy}, Position{cx - 1, cy})
		if err != nil || !same {
			return wallString
		}
		return openString
	case xEven:
		// vertical wall between horizontal neighbors
		same, err := g.SameSegment(Position{x/2 - 1, y / 2}, Position{x / 2, y / 2})
		if err != nil || !same {
			return wallString
		}
		return openString
	default:
		// horizontal wall between vertical neighbors
		same, err := g.SameSegment(Position{x / 2, y/2 - 1}, Position{x / 2, y / 2})
		if err != nil || !same {
			return wallString
		}
		return openString
	}
}

/*

Board signatures

*/

// Signature gives a deterministic one-line key for a board's
// geometry and givens (not its solution), suitable for naming
// the board in caches and archives.
func (b *Board) Signature() string {
	g := b.geometry
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d", g.rows, g.cols)
	for _, seg := range g.segments {
		sb.WriteString("|")
		for _, pos := range seg {
			fmt.Fprintf(&sb, "(%d,%d)", pos.X, pos.Y)
		}
	}
	if len(b.givens) > 0 {
		positions := make([]Position, 0, len(b.givens))
		for pos := range b.givens {
			positions = append(positions, pos)
		}
		sort.Slice(positions, func(i, j int) bool {
			if positions[i].Y != positions[j].Y {
				return positions[i].Y < positions[j].Y
			}
			return positions[i].X < positions[j].X
		})
		sb.WriteString("|givens:")
		for _, pos := range positions {
			fmt.Fprintf(&sb, "(%d,%d)=%d", pos.X, pos.Y, b.givens[pos])
		}
	}
	return sb.String()
}
