package puzzle

/*

Boards

A Board couples a validated geometry with the puzzle input (the
given values) and, after a successful solve, the solution.  The
geometry and givens never change after construction; the
solution is written once per solve call, and a later solve
replaces it.  Solving must not run concurrently with a read of
the prior solution.

*/

// A Solution is a total assignment of a value to every cell.
type Solution map[Position]int

// A Board is a validated puzzle instance.
type Board struct {
	geometry *Geometry
	givens   map[Position]int
	solution Solution
}

// New builds a Board from caller-supplied geometry and givens.
// All validation happens here: the segments must tile the grid
// exactly, and every given must name an on-grid cell and fit in
// the range 1 to the size of the cell's segment.  A Board that
// constructs without error is safe to render and solve.
func New(rows, cols int, segments []Segment, givens map[Position]int) (*Board, error) {
	geometry, err := newGeometry(rows, cols, segments)
	if err != nil {
		return nil, err
	}
	b := &Board{geometry: geometry, givens: make(map[Position]int, len(givens))}
	for pos, val := range givens {
		if !geometry.InBounds(pos) {
			return nil, boundsError(pos, rows, cols)
		}
		max, err := geometry.SegmentSize(pos)
		if err != nil {
			return nil, err
		}
		if val < 1 || val > max {
			return nil, givenError(pos, val, max)
		}
		b.givens[pos] = val
	}
	return b, nil
}

// Geometry gives the board's validated geometry.
func (b *Board) Geometry() *Geometry {
	return b.geometry
}

// Given looks up the given value at pos, if there is one.
func (b *Board) Given(pos Position) (int, bool) {
	val, ok := b.givens[pos]
	return val, ok
}

// Solved reports whether the board currently holds a solution.
func (b *Board) Solved() bool {
	return b.solution != nil
}

// Solution copies out the current solution, nil if the board is
// unsolved.
func (b *Board) Solution() Solution {
	if b.solution == nil {
		return nil
	}
	s := make(Solution, len(b.solution))
	for pos, val := range b.solution {
		s[pos] = val
	}
	return s
}

// ValueAt is the renderer contract: the given at pos if present,
// else the solved value, else 0 and false for a cell whose value
// is still unknown.
func (b *Board) ValueAt(pos Position) (int, bool) {
	if val, ok := b.givens[pos]; ok {
		return val, true
	}
	if val, ok := b.solution[pos]; ok {
		return val, true
	}
	return 0, false
}

/*

Errors

*/

func givenError(pos Position, val, max int) Error {
	return Error{
		Scope:     CellScope,
		Structure: AttributeValueStructure,
		Attribute: GivenAttribute,
		Condition: GivenValueCondition,
		Values:    ErrorData{pos.String(), val, val, max},
	}
}
