package puzzle

import (
	"fmt"
)

/*

Board geometry

A board is a rows x cols grid of cells partitioned into
irregular contiguous regions called segments.  The geometry is
the source of truth for which segment a cell belongs to, whether
cells share a segment, and whether a position lies on the grid.
It is validated completely at construction, so every consumer
(the model builder, the renderer) can rely on the partition
being a proper tiling of the grid.

*/

// A Position names a cell by column (X, counted from the left)
// and row (Y, counted from the bottom).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String prints a position the way puzzle setters write them.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// A Segment is one scoring region: the cells that must
// collectively hold all-distinct values.
type Segment []Position

// A Geometry is a validated partition of the grid into segments.
// The cell-to-segment mapping is computed once at construction,
// so segment lookups never rescan the segment list.
type Geometry struct {
	rows, cols int
	segments   []Segment
	owner      map[Position]int // cell -> index into segments
}

// newGeometry validates the partition and builds the lookup
// table.  Every segment cell must be in bounds, and every grid
// cell must be covered by exactly one segment.
func newGeometry(rows, cols int, segments []Segment) (*Geometry, error) {
	if rows < 1 {
		return nil, dimensionError("rows", rows)
	}
	if cols < 1 {
		return nil, dimensionError("cols", cols)
	}
	g := &Geometry{
		rows:     rows,
		cols:     cols,
		segments: segments,
		owner:    make(map[Position]int, rows*cols),
	}
	for i, seg := range segments {
		for _, pos := range seg {
			if !g.InBounds(pos) {
				return nil, boundsError(pos, rows, cols)
			}
			if j, ok := g.owner[pos]; ok {
				return nil, coveredError(pos, j, i)
			}
			g.owner[pos] = i
		}
	}
	if len(g.owner) != rows*cols {
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				pos := Position{x, y}
				if _, ok := g.owner[pos]; !ok {
					return nil, uncoveredError(pos)
				}
			}
		}
	}
	return g, nil
}

// Rows gives the vertical extent of the grid.
func (g *Geometry) Rows() int {
	return g.rows
}

// Cols gives the horizontal extent of the grid.
func (g *Geometry) Cols() int {
	return g.cols
}

// Segments gives the segments in construction order.
func (g *Geometry) Segments() []Segment {
	return g.segments
}

// InBounds reports whether pos lies on the grid.
func (g *Geometry) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.cols && pos.Y >= 0 && pos.Y < g.rows
}

// SegmentOf finds the unique segment containing pos.  On a
// constructed geometry this can only fail for a position off the
// grid.
func (g *Geometry) SegmentOf(pos Position) (Segment, error) {
	i, ok := g.owner[pos]
	if !ok {
		return nil, uncoveredError(pos)
	}
	return g.segments[i], nil
}

// SegmentSize gives the cell count of the segment containing
// pos, which is also the largest value pos may hold.
func (g *Geometry) SegmentSize(pos Position) (int, error) {
	seg, err := g.SegmentOf(pos)
	if err != nil {
		return 0, err
	}
	return len(seg), nil
}

// SameSegment reports whether all the given positions lie in the
// segment containing the first.  At least two positions are
// required.
func (g *Geometry) SameSegment(positions ...Position) (bool, error) {
	if len(positions) < 2 {
		return false, positionsError(len(positions))
	}
	first, ok := g.owner[positions[0]]
	if !ok {
		return false, uncoveredError(positions[0])
	}
	for _, pos := range positions[1:] {
		i, ok := g.owner[pos]
		if !ok {
			return false, uncoveredError(pos)
		}
		if i != first {
			return false, nil
		}
	}
	return true, nil
}

// segmentIndex is the renderer's fast path: the index of the
// owning segment, or -1 off the grid.
func (g *Geometry) segmentIndex(pos Position) int {
	if i, ok := g.owner[pos]; ok {
		return i
	}
	return -1
}

/*

Directions

*/

// A direction is one of the four axis-aligned unit steps.
type direction struct {
	dx, dy int
}

// directions lists right, left, up, down.
var directions = [4]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// step gives the position distance cells away from pos along d.
func step(pos Position, d direction, distance int) Position {
	return Position{pos.X + d.dx*distance, pos.Y + d.dy*distance}
}

/*

Errors

*/

func dimensionError(name string, val int) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: NamedAttribute,
		Condition: TooSmallCondition,
		Values:    ErrorData{name, val, 1},
	}
}

func boundsError(pos Position, rows, cols int) Error {
	return Error{
		Scope:     CellScope,
		Structure: AttributeStructure,
		Attribute: PositionAttribute,
		Condition: OutOfBoundsCondition,
		Values:    ErrorData{pos.String(), fmt.Sprintf("%dx%d", rows, cols)},
	}
}

func coveredError(pos Position, first, second int) Error {
	return Error{
		Scope:     CellScope,
		Structure: ScopeStructure,
		Condition: DoublyCoveredCondition,
		Values:    ErrorData{pos.String(), first, second},
	}
}

func uncoveredError(pos Position) Error {
	return Error{
		Scope:     CellScope,
		Structure: ScopeStructure,
		Condition: UncoveredCondition,
		Values:    ErrorData{pos.String()},
	}
}

func positionsError(got int) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeStructure,
		Attribute: PositionAttribute,
		Condition: TooFewPositionsCondition,
		Values:    ErrorData{2, got},
	}
}
