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
	"testing"
)

/*

Board construction

*/

func TestNewBoard(t *testing.T) {
	b, err := New(5, 5, testSegments5x5(), map[Position]int{{2, 4}: 3})
	if err != nil {
		t.Fatalf("Valid board failed to construct: %v", err)
	}
	if b.Solved() {
		t.Errorf("Freshly constructed board claims to be solved.")
	}
	if b.Solution() != nil {
		t.Errorf("Freshly constructed board has a solution.")
	}
	if val, ok := b.Given(Position{2, 4}); !ok || val != 3 {
		t.Errorf("Given((2,4)) = (%d, %v) but expected (3, true)", val, ok)
	}
	if _, ok := b.Given(Position{0, 0}); ok {
		t.Errorf("Given((0,0)) found a value where none was supplied.")
	}
}

func TestNewBoardBadPartition(t *testing.T) {
	// construction-time geometry failures pass through New
	if _, err := New(2, 2, []Segment{{{0, 0}, {0, 1}, {1, 0}}}, nil); err == nil {
		t.Fatalf("A board over an incomplete partition did not fail.")
	} else if !IsPartitionError(err) {
		t.Logf("New incomplete partition: %v", err)
		t.Errorf("Incorrect error!")
	}
}

func TestNewBoardBadGivens(t *testing.T) {
	segments := testSegments5x5()
	// value above the segment size (segment B has 3 cells)
	if _, err := New(5, 5, segments, map[Position]int{{2, 0}: 4}); err == nil {
		t.Fatalf("A given above the segment size did not fail.")
	} else {
		if err.(Error).Condition != GivenValueCondition {
			t.Logf("New given 4 in 3-cell segment: %v", err)
			t.Errorf("Incorrect error!")
		}
		if !IsGivenValueError(err) {
			t.Errorf("IsGivenValueError missed the error %v", err)
		}
	}
	// value below 1
	if _, err := New(5, 5, segments, map[Position]int{{0, 0}: 0}); err == nil {
		t.Fatalf("A zero given did not fail.")
	} else if err.(Error).Condition != GivenValueCondition {
		t.Logf("New given 0: %v", err)
		t.Errorf("Incorrect error!")
	}
	// position off the grid
	if _, err := New(5, 5, segments, map[Position]int{{9, 0}: 1}); err == nil {
		t.Fatalf("A given off the grid did not fail.")
	} else if err.(Error).Condition != OutOfBoundsCondition {
		t.Logf("New given off grid: %v", err)
		t.Errorf("Incorrect error!")
	}
}

/*

Value lookup

*/

func TestValueAt(t *testing.T) {
	b, err := New(2, 2, []Segment{{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		map[Position]int{{0, 0}: 2})
	if err != nil {
		t.Fatalf("Valid board failed to construct: %v", err)
	}
	// unsolved: only the given is known
	if val, ok := b.ValueAt(Position{0, 0}); !ok || val != 2 {
		t.Errorf("ValueAt((0,0)) = (%d, %v) but expected (2, true)", val, ok)
	}
	if _, ok := b.ValueAt(Position{1, 1}); ok {
		t.Errorf("ValueAt((1,1)) on an unsolved board found a value.")
	}
	// solved: solution fills in the rest, given still wins
	b.solution = Solution{{0, 0}: 2, {1, 0}: 4, {0, 1}: 3, {1, 1}: 1}
	if val, ok := b.ValueAt(Position{1, 1}); !ok || val != 1 {
		t.Errorf("ValueAt((1,1)) = (%d, %v) but expected (1, true)", val, ok)
	}
	if val, ok := b.ValueAt(Position{0, 0}); !ok || val != 2 {
		t.Errorf("ValueAt((0,0)) = (%d, %v) but expected the given (2, true)", val, ok)
	}
}

func TestSolutionCopies(t *testing.T) {
	b, err := Example2x2()
	if err != nil {
		t.Fatalf("Example board failed to construct: %v", err)
	}
	b.solution = Solution{{0, 0}: 1, {1, 0}: 2, {0, 1}: 3, {1, 1}: 4}
	s := b.Solution()
	s[Position{0, 0}] = 9
	if b.solution[Position{0, 0}] != 1 {
		t.Errorf("Mutating a returned solution changed the board.")
	}
}
