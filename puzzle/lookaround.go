package puzzle

import (
	"fmt"

	"github.com/gitrdm/gokanlogic/pkg/minikanren"
)

/*

The look-around constraint

A cell holding value v dictates where the nearest cell with the
same value may sit: searching outward from the cell along the
four axis rays, no same-valued cell may appear at ray distance
less than v in any direction, and the nearest same-valued cell
over all four rays combined, if there is one at all, sits at
exactly distance v.  A value whose reach falls off the grid in
every direction is simply unconstrained by this rule.

The rule is value-dependent, so it is encoded as one propagation
constraint per (cell, candidate value) pair.  Each constraint is
an implication guarded by the cell holding the candidate: while
the guard is undecided the constraint only watches for evidence
that rules the candidate out; once the guard binds, it prunes
the ray cells.  When no in-bounds cell at the exact distance can
hold the candidate, the constraint asserts outright that no ray
cell holds it, rather than silently dropping the requirement.

*/

// A lookAround enforces the distance rule for one cell and one
// candidate value.  The ray cells are partitioned at build time
// by their distance from the cell: strictly nearer than the
// value, at exactly the value, and beyond it.
type lookAround struct {
	cell    *minikanren.FDVariable
	value   int
	nearer  []*minikanren.FDVariable
	exactly []*minikanren.FDVariable
	beyond  []*minikanren.FDVariable
}

// newLookAround walks the four rays from pos and buckets the
// in-bounds cells by distance relative to value.
func newLookAround(g *Geometry, vars map[Position]*minikanren.FDVariable, pos Position, value int) *lookAround {
	la := &lookAround{cell: vars[pos], value: value}
	for _, d := range directions {
		for dist := 1; ; dist++ {
			q := step(pos, d, dist)
			if !g.InBounds(q) {
				break
			}
			switch {
			case dist < value:
				la.nearer = append(la.nearer, vars[q])
			case dist == value:
				la.exactly = append(la.exactly, vars[q])
			default:
				la.beyond = append(la.beyond, vars[q])
			}
		}
	}
	return la
}

// Variables returns the variables involved in this constraint.
func (la *lookAround) Variables() []*minikanren.FDVariable {
	vars := make([]*minikanren.FDVariable, 0, 1+len(la.nearer)+len(la.exactly)+len(la.beyond))
	vars = append(vars, la.cell)
	vars = append(vars, la.nearer...)
	vars = append(vars, la.exactly...)
	vars = append(vars, la.beyond...)
	return vars
}

// Type returns the constraint type identifier.
func (la *lookAround) Type() string {
	return "LookAround"
}

// String returns a human-readable representation.
func (la *lookAround) String() string {
	return fmt.Sprintf("LookAround(cell=%d, value=%d)", la.cell.ID(), la.value)
}

// Propagate applies the look-around rule for this candidate.
func (la *lookAround) Propagate(solver *minikanren.Solver, state *minikanren.SolverState) (*minikanren.SolverState, error) {
	if solver == nil {
		return nil, fmt.Errorf("LookAround.Propagate: nil solver")
	}
	cellDomain := solver.GetDomain(state, la.cell.ID())
	if cellDomain == nil || cellDomain.Count() == 0 {
		return nil, fmt.Errorf("LookAround.Propagate: cell variable %d has empty domain", la.cell.ID())
	}
	if !cellDomain.Has(la.value) {
		// guard already false
		return state, nil
	}
	if cellDomain.IsSingleton() {
		return la.enforce(solver, state)
	}
	return la.watch(solver, state, cellDomain)
}

// enforce prunes the rays once the cell is bound to the value.
func (la *lookAround) enforce(solver *minikanren.Solver, state *minikanren.SolverState) (*minikanren.SolverState, error) {
	currentState := state

	// No same value strictly nearer than the target distance, in
	// any direction.
	for _, v := range la.nearer {
		dom := solver.GetDomain(currentState, v.ID())
		if dom == nil || dom.Count() == 0 {
			return nil, fmt.Errorf("LookAround.Propagate: variable %d has empty domain", v.ID())
		}
		if !dom.Has(la.value) {
			continue
		}
		if dom.IsSingleton() {
			return nil, fmt.Errorf("LookAround.Propagate: value %d within distance %d of cell %d",
				la.value, la.value, la.cell.ID())
		}
		currentState, _ = solver.SetDomain(currentState, v.ID(), dom.Remove(la.value))
	}

	// Support: cells at exactly the target distance that can
	// still take the value.
	var support *minikanren.FDVariable
	supportCount := 0
	for _, v := range la.exactly {
		dom := solver.GetDomain(currentState, v.ID())
		if dom == nil || dom.Count() == 0 {
			return nil, fmt.Errorf("LookAround.Propagate: variable %d has empty domain", v.ID())
		}
		if !dom.Has(la.value) {
			continue
		}
		if dom.IsSingleton() {
			// the nearest same value sits at exactly the distance
			return currentState, nil
		}
		support = v
		supportCount++
	}

	if supportCount == 0 {
		// No direction can place the value at the exact distance,
		// so no ray cell may hold it at all.
		for _, v := range la.beyond {
			dom := solver.GetDomain(currentState, v.ID())
			if dom == nil || dom.Count() == 0 {
				return nil, fmt.Errorf("LookAround.Propagate: variable %d has empty domain", v.ID())
			}
			if !dom.Has(la.value) {
				continue
			}
			if dom.IsSingleton() {
				return nil, fmt.Errorf("LookAround.Propagate: value %d beyond distance %d of cell %d with no nearer occurrence",
					la.value, la.value, la.cell.ID())
			}
			currentState, _ = solver.SetDomain(currentState, v.ID(), dom.Remove(la.value))
		}
		return currentState, nil
	}

	// A ray cell already bound to the value past the exact
	// distance forces the last remaining supporting cell.
	if supportCount == 1 {
		for _, v := range la.beyond {
			dom := solver.GetDomain(currentState, v.ID())
			if dom != nil && dom.IsSingleton() && dom.SingletonValue() == la.value {
				supportDomain := solver.GetDomain(currentState, support.ID())
				bound := minikanren.NewBitSetDomainFromValues(supportDomain.MaxValue(), []int{la.value})
				currentState, _ = solver.SetDomain(currentState, support.ID(), bound)
				break
			}
		}
	}
	return currentState, nil
}

// watch removes the candidate from the cell's domain when the
// rays already contradict it: a same value bound strictly nearer
// than the distance, or bound beyond it with no cell at the
// exact distance able to take it.
func (la *lookAround) watch(solver *minikanren.Solver, state *minikanren.SolverState, cellDomain minikanren.Domain) (*minikanren.SolverState, error) {
	dead := false
	for _, v := range la.nearer {
		dom := solver.GetDomain(state, v.ID())
		if dom != nil && dom.IsSingleton() && dom.SingletonValue() == la.value {
			dead = true
			break
		}
	}
	if !dead {
		hasSupport := false
		for _, v := range la.exactly {
			dom := solver.GetDomain(state, v.ID())
			if dom != nil && dom.Has(la.value) {
				hasSupport = true
				break
			}
		}
		if !hasSupport {
			for _, v := range la.beyond {
				dom := solver.GetDomain(state, v.ID())
				if dom != nil && dom.IsSingleton() && dom.SingletonValue() == la.value {
					dead = true
					break
				}
			}
		}
	}
	if !dead {
		return state, nil
	}
	next := cellDomain.Remove(la.value)
	if next.Count() == 0 {
		return nil, fmt.Errorf("LookAround.Propagate: cell variable %d has no feasible values", la.cell.ID())
	}
	currentState, _ := solver.SetDomain(state, la.cell.ID(), next)
	return currentState, nil
}
