package puzzle

/*

Bundled example boards

Three boards that exercise the rule set at increasing size: the
trivial single cell, the smallest grid where segment
distinctness does real work, and the seven-segment 5x5 layout
from the published puzzle.

*/

// Example1x1 builds the single-cell board.  Its only solution
// assigns 1 to the one cell.
func Example1x1() (*Board, error) {
	return New(1, 1, []Segment{{{0, 0}}}, nil)
}

// Example2x2 builds the 2x2 board with one segment covering the
// whole grid.  Any permutation of 1..4 solves it.
func Example2x2() (*Board, error) {
	return New(2, 2, []Segment{{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}, nil)
}

// Example5x5 builds the published 5x5 seven-segment layout,
// with no givens.
func Example5x5() (*Board, error) {
	return New(5, 5, []Segment{
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {2, 1}},
		{{3, 0}, {3, 1}, {4, 0}, {4, 1}},
		{{0, 2}, {0, 3}, {0, 4}, {1, 3}},
		{{3, 2}, {4, 2}, {4, 3}, {4, 4}},
		{{2, 2}, {2, 3}, {3, 3}},
		{{1, 4}, {2, 4}, {3, 4}},
	}, nil)
}
