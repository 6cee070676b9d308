package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"depsolve-judge/internal/types"
)

// ClauseDatabase holds every clause derived from the repository and
// from the final constraints, plus the index separating the two
// families.
type ClauseDatabase struct {
	Clauses []types.Clause
	// RepoCutoff is the number of clauses produced by depends+conflicts.
	// Clauses with index < RepoCutoff are repository clauses; the rest
	// are final-constraint clauses.
	RepoCutoff int
}

// BuildClauseDatabase generates the depends, conflicts, and final
// constraint clause families in that order.
func BuildClauseDatabase(ctx context.Context, repo *RepoIndex, resolver *RangeResolver, constraints []types.Constraint) ClauseDatabase {
	var db ClauseDatabase

	for _, id := range repo.IDs() {
		props := repo.PropertiesOf(id)
		for _, clause := range props.Depends {
			db.Clauses = append(db.Clauses, dependsClause(id, clause, resolver))
		}
	}
	for _, id := range repo.IDs() {
		props := repo.PropertiesOf(id)
		for _, r := range props.Conflicts {
			for _, q := range resolver.Resolve(r) {
				db.Clauses = append(db.Clauses, types.Clause{
					Literals: []types.Literal{negLit(id), negLit(q)},
					Origin:   types.ClauseFromRepository,
				})
			}
		}
	}
	db.RepoCutoff = len(db.Clauses)

	for _, c := range constraints {
		matched := resolver.Resolve(c.Range)
		switch c.Kind {
		case types.ConstraintRequire:
			lits := make([]types.Literal, len(matched))
			for i, id := range matched {
				lits[i] = posLit(id)
			}
			db.Clauses = append(db.Clauses, types.Clause{
				Literals: lits,
				Origin:   types.ClauseFromConstraint,
				Source:   ConstraintString(c),
			})
		case types.ConstraintForbid:
			for _, id := range matched {
				db.Clauses = append(db.Clauses, types.Clause{
					Literals: []types.Literal{negLit(id)},
					Origin:   types.ClauseFromConstraint,
				})
			}
		}
	}

	log.Ctx(ctx).Debug().
		Int("clauses", len(db.Clauses)).
		Int("repo_cutoff", db.RepoCutoff).
		Msg("clause database built")
	return db
}

// dependsClause builds "if p is present, some member of one of the
// clause's ranges must also be present": [-i, m1, m2, ...]. A clause
// matching zero ids reduces to the unit clause [-i], forbidding i.
func dependsClause(ownerID int, clause types.DependsClause, resolver *RangeResolver) types.Clause {
	lits := []types.Literal{negLit(ownerID)}
	for _, r := range clause.Ranges {
		for _, id := range resolver.Resolve(r) {
			lits = append(lits, posLit(id))
		}
	}
	return types.Clause{Literals: lits, Origin: types.ClauseFromRepository}
}

func posLit(id int) types.Literal { return types.Literal(id) }
func negLit(id int) types.Literal { return types.Literal(-id) }
