// Package app wires the judge's external collaborators (input
// loaders) to the core and produces the single-line result the CLI
// prints.
package app

import (
	"context"

	"depsolve-judge/internal/adapters"
	"depsolve-judge/internal/core"
	"depsolve-judge/internal/ports"
	"depsolve-judge/internal/types"
)

// Service loads judge inputs and runs the core checker.
type Service struct {
	Loader ports.InputLoaderPort
}

// NewService builds a Service with the JSON file adapter.
func NewService() Service {
	return Service{Loader: adapters.NewJSONFileAdapter()}
}

// JudgeRequest holds the four input file paths in CLI positional
// order.
type JudgeRequest struct {
	RepositoryPath  string
	InitialPath     string
	CommandsPath    string
	ConstraintsPath string
}

// JudgeResult is the successful outcome: the total cost.
type JudgeResult struct {
	Cost uint64
}

// Judge loads all four inputs and runs the core driver.
func (s Service) Judge(ctx context.Context, req JudgeRequest) (JudgeResult, error) {
	repository, err := s.Loader.LoadRepository(req.RepositoryPath)
	if err != nil {
		return JudgeResult{}, err
	}
	initial, err := s.Loader.LoadState(req.InitialPath)
	if err != nil {
		return JudgeResult{}, err
	}
	commands, err := s.Loader.LoadCommands(req.CommandsPath)
	if err != nil {
		return JudgeResult{}, err
	}
	constraints, err := s.Loader.LoadConstraints(req.ConstraintsPath)
	if err != nil {
		return JudgeResult{}, err
	}

	result, err := core.Run(ctx, types.Inputs{
		Repository:  repository,
		Initial:     initial,
		Commands:    commands,
		Constraints: constraints,
	})
	if err != nil {
		return JudgeResult{}, err
	}
	return JudgeResult{Cost: result.Cost}, nil
}
