package core

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depsolve-judge/internal/types"
)

const uninstallCost uint64 = 1_000_000

// RunResult is the outcome of a successful judge run: the total cost
// of the solution.
type RunResult struct {
	Cost uint64
}

// Run builds the repository index, clause database, and engine from
// inputs, applies commands in order, and returns the total cost or
// the first diagnostic.
func Run(ctx context.Context, inputs types.Inputs) (RunResult, error) {
	repo, err := NewRepoIndex(ctx, inputs.Repository)
	if err != nil {
		return RunResult{}, err
	}

	present := make(map[int]bool, len(inputs.Initial))
	for _, p := range inputs.Initial {
		id := repo.IDOf(p)
		if id == 0 {
			return RunResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("initial package not in repository: " + PackageString(p))
		}
		present[id] = true
	}

	resolver := NewRangeResolver(repo)
	db := BuildClauseDatabase(ctx, repo, resolver, inputs.Constraints)
	engine := NewEngine(ctx, db.Clauses, repo.Len(), present)

	if violations := engine.UnsatBelow(db.RepoCutoff); len(violations) > 0 {
		return RunResult{}, invalidStateError("invalid initial state", repo, db, violations[0])
	}

	var cost uint64
	for _, cmd := range inputs.Commands {
		id := repo.IDOf(cmd.Package)
		switch cmd.Action {
		case types.ActionInstall:
			if id == 0 {
				return RunResult{}, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg("package not in repository: " + PackageString(cmd.Package))
			}
			if engine.IsPresent(id) {
				return RunResult{}, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg("package already installed: " + PackageString(cmd.Package))
			}
			engine.Assign(posLit(id))
			cost += repo.SizeOf(id)
		case types.ActionUninstall:
			if id == 0 || !engine.IsPresent(id) {
				return RunResult{}, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg("package not installed: " + PackageString(cmd.Package))
			}
			engine.Assign(negLit(id))
			cost += uninstallCost
		}

		if violations := engine.UnsatBelow(db.RepoCutoff); len(violations) > 0 {
			return RunResult{}, commandError(cmd, repo, db, violations[0])
		}
		log.Ctx(ctx).Debug().Str("command", CommandString(cmd)).Uint64("cost", cost).Msg("command applied")
	}

	if remaining := engine.UnsatAll(); len(remaining) > 0 {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("constraint not satisfied: " + renderClause(db.Clauses[remaining[0]], repo))
	}

	return RunResult{Cost: cost}, nil
}

func invalidStateError(prefix string, repo *RepoIndex, db ClauseDatabase, clauseID int) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(prefix + "; unsat constraint " + renderClause(db.Clauses[clauseID], repo))
}

func commandError(cmd types.Command, repo *RepoIndex, db ClauseDatabase, clauseID int) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("bad command " + CommandString(cmd) + "; unsat constraint " + renderClause(db.Clauses[clauseID], repo))
}

// renderClause renders a clause's literals as space-separated package
// references, negated literals prefixed with "-", e.g. "-a=1 b=1". A
// required range matching zero repository packages produces a clause
// with no literals at all; its Source carries the originating
// constraint text so the diagnostic still names something.
func renderClause(clause types.Clause, repo *RepoIndex) string {
	if len(clause.Literals) == 0 {
		return clause.Source
	}
	parts := make([]string, len(clause.Literals))
	for i, lit := range clause.Literals {
		name := PackageString(repo.PackageOf(lit.Var()))
		if lit.Positive() {
			parts[i] = name
		} else {
			parts[i] = "-" + name
		}
	}
	return strings.Join(parts, " ")
}
