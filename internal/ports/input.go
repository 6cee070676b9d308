// Package ports declares the boundaries between the judge core and
// its external collaborators: the four JSON input files. Loading
// bytes off disk is deliberately kept out of internal/core so the
// core only ever sees parsed types.Inputs.
package ports

import "depsolve-judge/internal/types"

// RepositoryLoaderPort decodes the repository file into entries.
type RepositoryLoaderPort interface {
	LoadRepository(path string) ([]types.RepositoryEntry, error)
}

// StateLoaderPort decodes the initial-state file into packages.
type StateLoaderPort interface {
	LoadState(path string) ([]types.Package, error)
}

// CommandLoaderPort decodes the commands file into a command sequence.
type CommandLoaderPort interface {
	LoadCommands(path string) ([]types.Command, error)
}

// ConstraintLoaderPort decodes the final-constraints file.
type ConstraintLoaderPort interface {
	LoadConstraints(path string) ([]types.Constraint, error)
}

// InputLoaderPort bundles all four loaders, matching the CLI's
// positional argument order: repository, initial, commands,
// constraints.
type InputLoaderPort interface {
	RepositoryLoaderPort
	StateLoaderPort
	CommandLoaderPort
	ConstraintLoaderPort
}
