// Package types holds the plain data structures shared across the
// judge: versions, packages, ranges, clauses, and the repository and
// command inputs they are built from. Nothing in this package knows
// how to parse or compare; that lives in internal/core.
package types

// Version is an ordered tuple of non-negative integers, e.g. "1.2.10"
// parses to {1, 2, 10}. Comparison is raw tuple comparison: componentwise
// over the shared prefix, and a tuple that is a strict prefix of another
// sorts before it (no zero padding, so (1) and (1, 0) are not equal).
type Version struct {
	Nums []int
}

// Package is a repository entry identity: a name plus a version.
type Package struct {
	Name    string
	Version Version
}

// PackageRange selects zero or more package versions of a single name.
// Min and Max are nil when unbounded on that side. Inclusive applies
// to whichever bound(s) are set; it has no effect when both are nil.
type PackageRange struct {
	Name      string
	Min       *Version
	Max       *Version
	Inclusive bool
}

// ConstraintKind is the sign of a final constraint: require-present or
// require-absent.
type ConstraintKind byte

const (
	ConstraintRequire ConstraintKind = '+'
	ConstraintForbid  ConstraintKind = '-'
)

// Constraint is one user-supplied final requirement: "at least one
// package in Range must be present" (Require) or "none may be"
// (Forbid).
type Constraint struct {
	Kind  ConstraintKind
	Range PackageRange
}

// CommandAction is the sign of a command: install or uninstall.
type CommandAction byte

const (
	ActionInstall   CommandAction = '+'
	ActionUninstall CommandAction = '-'
)

// Command is a single install/uninstall step in a solution sequence.
type Command struct {
	Action  CommandAction
	Package Package
}
