package types

// DependsClause is one disjunctive dependency clause: the owning
// package is satisfied if any range in the clause has a present
// member. A package's Depends is an ordered list of such clauses,
// ANDed together.
type DependsClause struct {
	Ranges []PackageRange
}

// PackageProperties is everything the repository records about one
// (name, version) entry beyond its identity.
type PackageProperties struct {
	Depends   []DependsClause
	Conflicts []PackageRange
	Size      uint64
}

// RepositoryEntry is a single decoded repository record, keyed by
// Package before it is assigned a dense id.
type RepositoryEntry struct {
	Package    Package
	Properties PackageProperties
}

// Inputs bundles the four decoded input files a judge run needs, in
// the order the CLI accepts their paths: repository, initial state,
// commands, and final constraints.
type Inputs struct {
	Repository  []RepositoryEntry
	Initial     []Package
	Commands    []Command
	Constraints []Constraint
}
