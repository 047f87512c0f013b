package puzzle

import (
	"context"
	"errors"

	"github.com/gitrdm/gokanlogic/pkg/minikanren"
)

/*

Block Party solver

Solving translates a validated board into a finite-domain
constraint model and hands it to a general-purpose propagation
solver, rather than searching over the grid directly.

1. One integer variable per cell, in reading order (left to
right, bottom row first).  The domain is 1 to the size of the
cell's segment; a given shrinks the domain to a single value.

2. One all-different constraint per segment, over the segment's
variables.

3. One look-around constraint per cell and candidate value,
built from the cell's four rays (see lookaround.go).

The solver runs the constraints to a fixed point, and where
propagation alone cannot decide a cell it branches on the cell
with the fewest remaining values and backtracks on failure.  An
assignment is only accepted when every constraint holds with
every cell bound, so any returned solution satisfies the full
rule set.

Three outcomes are distinguished: a solution, proof that no
assignment exists, and running out of time.  The solver library
reports root-level inconsistency as an empty result set and
cancellation through the context error; both are mapped to this
package's error conditions so callers can dispatch without
knowing the library.

*/

// Solve finds an assignment satisfying the distinctness and
// look-around rules and records it as the board's solution,
// replacing any previous one.  Infeasible boards fail with an
// InfeasibleCondition error; a context deadline or cancellation
// surfaces as a TimeoutCondition error.
func (b *Board) Solve(ctx context.Context) (Solution, error) {
	model, order, err := b.buildModel()
	if err != nil {
		return nil, err
	}
	solver := minikanren.NewSolver(model)
	results, err := solver.Solve(ctx, 1)
	if len(results) == 0 {
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, timeoutError()
			}
			return nil, internalError(err)
		}
		return nil, infeasibleError()
	}
	solution := make(Solution, len(order))
	for i, pos := range order {
		solution[pos] = results[0][i]
	}
	b.solution = solution
	return b.Solution(), nil
}

// CountSolutions counts assignments up to limit, without
// touching the board's stored solution.  Callers pass 2 to
// check whether a board's solution is unique.  A limit of 0 or
// less counts every assignment.
func (b *Board) CountSolutions(ctx context.Context, limit int) (int, error) {
	model, _, err := b.buildModel()
	if err != nil {
		return 0, err
	}
	solver := minikanren.NewSolver(model)
	results, err := solver.Solve(ctx, limit)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return 0, timeoutError()
		}
		return 0, internalError(err)
	}
	return len(results), nil
}

// buildModel constructs the constraint model and the cell order
// matching the solver's variable numbering.
func (b *Board) buildModel() (*minikanren.Model, []Position, error) {
	g := b.geometry
	model := minikanren.NewModel()
	order := make([]Position, 0, g.rows*g.cols)
	vars := make(map[Position]*minikanren.FDVariable, g.rows*g.cols)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			pos := Position{x, y}
			size, err := g.SegmentSize(pos)
			if err != nil {
				return nil, nil, err
			}
			var domain *minikanren.BitSetDomain
			if val, ok := b.givens[pos]; ok {
				domain = minikanren.NewBitSetDomainFromValues(size, []int{val})
			} else {
				domain = minikanren.NewBitSetDomain(size)
			}
			vars[pos] = model.NewVariableWithName(domain, pos.String())
			order = append(order, pos)
		}
	}
	for _, seg := range g.segments {
		segVars := make([]*minikanren.FDVariable, len(seg))
		for i, pos := range seg {
			segVars[i] = vars[pos]
		}
		distinct, err := minikanren.NewAllDifferent(segVars)
		if err != nil {
			return nil, nil, internalError(err)
		}
		model.AddConstraint(distinct)
	}
	for _, pos := range order {
		size, _ := g.SegmentSize(pos)
		for value := 1; value <= size; value++ {
			model.AddConstraint(newLookAround(g, vars, pos, value))
		}
	}
	return model, order, nil
}

/*

Errors

*/

func infeasibleError() Error {
	return Error{
		Scope:     SolveScope,
		Structure: ScopeStructure,
		Condition: InfeasibleCondition,
	}
}

func timeoutError() Error {
	return Error{
		Scope:     SolveScope,
		Structure: ScopeStructure,
		Condition: TimeoutCondition,
	}
}

func internalError(err error) Error {
	return Error{
		Scope:     InternalScope,
		Structure: ScopeStructure,
		Condition: GeneralCondition,
		Values:    ErrorData{err.Error()},
	}
}
