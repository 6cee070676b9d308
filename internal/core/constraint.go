package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve-judge/internal/types"
)

// ParseConstraint parses a final constraint: a leading '+' or '-'
// (ASCII hyphen-minus, per the commands/constraints file grammar)
// followed by a package range.
func ParseConstraint(raw string) (types.Constraint, error) {
	if raw == "" {
		return types.Constraint{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad constraint format: " + raw)
	}
	kind := types.ConstraintKind(raw[0])
	if kind != types.ConstraintRequire && kind != types.ConstraintForbid {
		return types.Constraint{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad constraint format: " + raw)
	}
	r, err := ParseRange(raw[1:])
	if err != nil {
		return types.Constraint{}, err
	}
	return types.Constraint{Kind: kind, Range: r}, nil
}

// ConstraintString renders a constraint in canonical form.
func ConstraintString(c types.Constraint) string {
	return string(c.Kind) + RangeString(c.Range)
}
