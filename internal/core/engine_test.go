package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"depsolve-judge/internal/types"
)

func clause(origin types.ClauseOrigin, lits ...types.Literal) types.Clause {
	return types.Clause{Literals: lits, Origin: origin}
}

func TestNewEngineInitialSatisfaction(t *testing.T) {
	clauses := []types.Clause{
		clause(types.ClauseFromRepository, negLit(1), posLit(2)),
	}
	present := map[int]bool{1: true, 2: true}
	e := NewEngine(context.Background(), clauses, 2, present)
	assert.Empty(t, e.UnsatAll())
}

func TestNewEngineInitiallyUnsat(t *testing.T) {
	clauses := []types.Clause{
		clause(types.ClauseFromRepository, negLit(1), posLit(2)),
	}
	present := map[int]bool{1: true, 2: false}
	e := NewEngine(context.Background(), clauses, 2, present)
	assert.Equal(t, []int{0}, e.UnsatAll())
}

func TestAssignDemotesSatisfiedClauseToUnsat(t *testing.T) {
	clauses := []types.Clause{
		clause(types.ClauseFromRepository, negLit(1), posLit(2)),
	}
	e := NewEngine(context.Background(), clauses, 2, map[int]bool{1: false, 2: false})
	assert.Empty(t, e.UnsatAll())

	e.Assign(posLit(1))
	assert.Equal(t, []int{0}, e.UnsatAll())
	assert.True(t, e.IsPresent(1))
}

func TestAssignPromotesUnsatClauseToSatisfied(t *testing.T) {
	clauses := []types.Clause{
		clause(types.ClauseFromRepository, negLit(1), posLit(2)),
	}
	e := NewEngine(context.Background(), clauses, 2, map[int]bool{1: true, 2: false})
	assert.Equal(t, []int{0}, e.UnsatAll())

	e.Assign(posLit(2))
	assert.Empty(t, e.UnsatAll())
}

func TestAssignIsIdempotent(t *testing.T) {
	clauses := []types.Clause{
		clause(types.ClauseFromRepository, negLit(1), posLit(2)),
	}
	e := NewEngine(context.Background(), clauses, 2, map[int]bool{1: true, 2: true})
	e.Assign(posLit(1))
	e.Assign(posLit(1))
	assert.Empty(t, e.UnsatAll())
}

func TestUnsatBelowOnlyReturnsRepositoryClauses(t *testing.T) {
	clauses := []types.Clause{
		clause(types.ClauseFromRepository, negLit(1), posLit(2)),
		clause(types.ClauseFromConstraint, posLit(2)),
	}
	e := NewEngine(context.Background(), clauses, 2, map[int]bool{1: true, 2: false})
	assert.Equal(t, []int{0}, e.UnsatBelow(1))
	assert.Equal(t, []int{0, 1}, e.UnsatAll())
}
