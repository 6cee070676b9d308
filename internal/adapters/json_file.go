// Package adapters implements the judge's input ports against plain
// JSON files on disk.
package adapters

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve-judge/internal/core"
	"depsolve-judge/internal/types"
)

// JSONFileAdapter loads all four judge inputs — repository, initial
// state, commands, constraints — from JSON files on disk.
type JSONFileAdapter struct{}

// NewJSONFileAdapter constructs a JSONFileAdapter.
func NewJSONFileAdapter() JSONFileAdapter {
	return JSONFileAdapter{}
}

// flexibleUint64 decodes a JSON number or numeric string into a
// uint64, for repository "size" fields that may be presented as
// either.
type flexibleUint64 uint64

func (f *flexibleUint64) UnmarshalJSON(data []byte) error {
	var asNumber uint64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*f = flexibleUint64(asNumber)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad size format").
			WithCause(err)
	}
	parsed, err := strconv.ParseUint(asString, 10, 64)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad size format: " + asString).
			WithCause(err)
	}
	*f = flexibleUint64(parsed)
	return nil
}

type repositoryRecord struct {
	Name      string         `json:"name"`
	Version   string         `json:"version"`
	Size      flexibleUint64 `json:"size"`
	Depends   [][]string     `json:"depends,omitempty"`
	Conflicts []string       `json:"conflicts,omitempty"`
}

// LoadRepository decodes the repository JSON array into entries,
// parsing every name/version/range string through the core grammar.
func (JSONFileAdapter) LoadRepository(path string) ([]types.RepositoryEntry, error) {
	var records []repositoryRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}

	entries := make([]types.RepositoryEntry, 0, len(records))
	for _, record := range records {
		pkg, err := core.ParsePackage(record.Name + "=" + record.Version)
		if err != nil {
			return nil, err
		}

		var depends []types.DependsClause
		for _, clause := range record.Depends {
			ranges := make([]types.PackageRange, 0, len(clause))
			for _, raw := range clause {
				r, err := core.ParseRange(raw)
				if err != nil {
					return nil, err
				}
				ranges = append(ranges, r)
			}
			depends = append(depends, types.DependsClause{Ranges: ranges})
		}

		conflicts := make([]types.PackageRange, 0, len(record.Conflicts))
		for _, raw := range record.Conflicts {
			r, err := core.ParseRange(raw)
			if err != nil {
				return nil, err
			}
			conflicts = append(conflicts, r)
		}

		entries = append(entries, types.RepositoryEntry{
			Package: pkg,
			Properties: types.PackageProperties{
				Depends:   depends,
				Conflicts: conflicts,
				Size:      uint64(record.Size),
			},
		})
	}
	return entries, nil
}

// LoadState decodes the initial-state JSON array of "name=version"
// strings.
func (JSONFileAdapter) LoadState(path string) ([]types.Package, error) {
	var raw []string
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}
	packages := make([]types.Package, 0, len(raw))
	for _, s := range raw {
		p, err := core.ParsePackage(s)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}

// LoadCommands decodes the commands JSON array of "+name=version" /
// "-name=version" strings.
func (JSONFileAdapter) LoadCommands(path string) ([]types.Command, error) {
	var raw []string
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}
	commands := make([]types.Command, 0, len(raw))
	for _, s := range raw {
		c, err := core.ParseCommand(s)
		if err != nil {
			return nil, err
		}
		commands = append(commands, c)
	}
	return commands, nil
}

// LoadConstraints decodes the constraints JSON array of "+range" /
// "-range" strings.
func (JSONFileAdapter) LoadConstraints(path string) ([]types.Constraint, error) {
	var raw []string
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}
	constraints := make([]types.Constraint, 0, len(raw))
	for _, s := range raw {
		c, err := core.ParseConstraint(s)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}
	return constraints, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read " + path).
			WithCause(err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse " + path).
			WithCause(err)
	}
	return nil
}
