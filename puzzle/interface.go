// Copyright 2026 Daniel C. Brotsky.  All rights reserved.

// Package puzzle models the Block Party look-around puzzle and
// solves it with finite-domain constraint propagation.
//
// A puzzle board is a rectangular grid of cells partitioned into
// irregular contiguous regions called segments.  Every cell
// holds an integer between 1 and the size of its segment, the
// cells of a segment all hold distinct values, and each value
// obeys the look-around rule: searching outward from a cell
// along the four grid directions, the nearest cell holding the
// same value sits at exactly the distance named by the value
// (a value whose reach leaves the grid with no same-valued cell
// on any ray is unconstrained).
//
// Positions are (x, y) pairs with x counted from the left and y
// from the bottom, matching how puzzle setters describe the
// grids.  Boards are validated completely at construction, so a
// Board in hand always has a proper partition and in-range given
// values; solving can then only fail by proving infeasibility or
// running out of time.
package puzzle

import (
	"encoding/json"
)

/*

Summaries

A Summary is the JSON-portable form of a board: enough to
reconstruct the geometry and givens, plus the solved values when
the board has them.  Summaries are what get cached and archived;
reconstructing a Board from a Summary revalidates everything.

*/

// A Given pairs a position with its pre-filled value.
type Given struct {
	Pos   Position `json:"pos"`
	Value int      `json:"value"`
}

// A Summary holds the portable form of a Board.  Values, when
// present, list every cell's solved value in reading order
// (left to right, bottom row first).
type Summary struct {
	Rows     int       `json:"rows"`
	Cols     int       `json:"cols"`
	Segments []Segment `json:"segments"`
	Givens   []Given   `json:"givens,omitempty"`
	Values   []int     `json:"values,omitempty"`
}

// Summary produces the portable form of the board, including
// the solution if one is present.
func (b *Board) Summary() *Summary {
	g := b.geometry
	s := &Summary{Rows: g.rows, Cols: g.cols, Segments: g.segments}
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			pos := Position{x, y}
			if val, ok := b.givens[pos]; ok {
				s.Givens = append(s.Givens, Given{Pos: pos, Value: val})
			}
		}
	}
	if b.solution != nil {
		s.Values = make([]int, 0, g.rows*g.cols)
		for y := 0; y < g.rows; y++ {
			for x := 0; x < g.cols; x++ {
				s.Values = append(s.Values, b.solution[Position{x, y}])
			}
		}
	}
	return s
}

// Board reconstructs a Board from its portable form, running
// the full construction-time validation.  Solved values, when
// present and complete, are restored as the board's solution.
func (s *Summary) Board() (*Board, error) {
	givens := make(map[Position]int, len(s.Givens))
	for _, given := range s.Givens {
		givens[given.Pos] = given.Value
	}
	b, err := New(s.Rows, s.Cols, s.Segments, givens)
	if err != nil {
		return nil, err
	}
	if len(s.Values) == s.Rows*s.Cols {
		solution := make(Solution, len(s.Values))
		i := 0
		for y := 0; y < s.Rows; y++ {
			for x := 0; x < s.Cols; x++ {
				solution[Position{x, y}] = s.Values[i]
				i++
			}
		}
		b.solution = solution
	}
	return b, nil
}

// Marshal encodes the summary as JSON.
func (s *Summary) Marshal() ([]byte, error) {
	bytes, err := json.Marshal(s)
	if err != nil {
		return nil, Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ErrorData{err.Error()},
		}
	}
	return bytes, nil
}

// UnmarshalSummary decodes a summary from JSON.
func UnmarshalSummary(data []byte) (*Summary, error) {
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ErrorData{err.Error()},
		}
	}
	return &s, nil
}
