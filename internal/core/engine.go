package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"depsolve-judge/internal/types"
)

// Engine is the watched-literal engine: a single satisfying literal
// per clause (or none), a reverse index from literal to the clauses
// containing it, a per-variable assignment, and the set of clauses
// currently unsatisfied.
type Engine struct {
	clauses []types.Clause
	val     []types.Literal // index by var id, 1..n; val[0] unused
	watch   []types.Literal // index by clause id; 0 means absent
	occ     map[types.Literal][]int
	unsat   map[int]struct{}
}

// NewEngine initializes the engine from a clause database and an
// initial presence set. val[v] is set to +v iff v is present
// initially. Each clause's literals are scanned in order; the first
// satisfied literal becomes its watch, or the clause joins unsat.
func NewEngine(ctx context.Context, clauses []types.Clause, numVars int, present map[int]bool) *Engine {
	e := &Engine{
		clauses: clauses,
		val:     make([]types.Literal, numVars+1),
		watch:   make([]types.Literal, len(clauses)),
		occ:     make(map[types.Literal][]int),
		unsat:   make(map[int]struct{}),
	}
	for v := 1; v <= numVars; v++ {
		if present[v] {
			e.val[v] = posLit(v)
		} else {
			e.val[v] = negLit(v)
		}
	}
	for ci, clause := range clauses {
		for _, lit := range clause.Literals {
			e.occ[lit] = append(e.occ[lit], ci)
		}
		watched := e.firstSatisfied(clause)
		if watched == 0 {
			e.unsat[ci] = struct{}{}
			continue
		}
		e.watch[ci] = watched
	}
	log.Ctx(ctx).Debug().
		Int("vars", numVars).
		Int("clauses", len(clauses)).
		Int("initially_unsat", len(e.unsat)).
		Msg("engine initialized")
	return e
}

// firstSatisfied returns the first literal of clause currently
// matching the assignment, or 0 if none does.
func (e *Engine) firstSatisfied(clause types.Clause) types.Literal {
	for _, lit := range clause.Literals {
		if e.val[lit.Var()] == lit {
			return lit
		}
	}
	return 0
}

// Assign flips a single variable to satisfy the given literal. It is
// idempotent: reassigning the same literal is a no-op.
func (e *Engine) Assign(lit types.Literal) {
	v := lit.Var()
	if e.val[v] == lit {
		return
	}
	e.val[v] = lit

	falsified := lit.Negate()
	for _, ci := range e.occ[falsified] {
		if e.watch[ci] != falsified {
			continue
		}
		watched := e.firstSatisfied(e.clauses[ci])
		if watched == 0 {
			e.watch[ci] = 0
			e.unsat[ci] = struct{}{}
			continue
		}
		e.watch[ci] = watched
	}

	for _, ci := range e.occ[lit] {
		if _, ok := e.unsat[ci]; !ok {
			continue
		}
		e.watch[ci] = lit
		delete(e.unsat, ci)
	}
}

// IsPresent reports whether variable v is currently assigned present.
func (e *Engine) IsPresent(v int) bool {
	return e.val[v].Positive()
}

// UnsatBelow returns the ids of unsatisfied clauses with index <
// cutoff, in ascending order. Used to find repository-clause
// violations.
func (e *Engine) UnsatBelow(cutoff int) []int {
	var out []int
	for ci := range e.unsat {
		if ci < cutoff {
			out = append(out, ci)
		}
	}
	sort.Ints(out)
	return out
}

// UnsatAll returns every currently unsatisfied clause id, ascending.
func (e *Engine) UnsatAll() []int {
	out := make([]int, 0, len(e.unsat))
	for ci := range e.unsat {
		out = append(out, ci)
	}
	sort.Ints(out)
	return out
}
