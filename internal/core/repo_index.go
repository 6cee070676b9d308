package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve-judge/internal/types"
)

// RepoIndex assigns every distinct repository package a dense id in
// 1..N, built once and never mutated afterward.
type RepoIndex struct {
	packages   []types.Package    // id-1 -> package
	properties []types.PackageProperties
	idOf       map[string]int // "name=version" -> id
}

// NewRepoIndex builds the index from decoded repository entries,
// preserving their input order so later stages iterate ids in
// insertion order. Duplicate (name, version) entries fail with
// "package repeated in repo".
func NewRepoIndex(ctx context.Context, entries []types.RepositoryEntry) (*RepoIndex, error) {
	idx := &RepoIndex{
		idOf: make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		assert.NotEmpty(ctx, entry.Package.Name, "repository entry name must be set")
		key := PackageString(entry.Package)
		if _, exists := idx.idOf[key]; exists {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("package repeated in repo: " + key)
		}
		idx.packages = append(idx.packages, entry.Package)
		idx.properties = append(idx.properties, entry.Properties)
		idx.idOf[key] = len(idx.packages)
	}
	return idx, nil
}

// Len returns the number of distinct repository packages (N).
func (idx *RepoIndex) Len() int {
	return len(idx.packages)
}

// IDs iterates ids 1..N in insertion order.
func (idx *RepoIndex) IDs() []int {
	ids := make([]int, idx.Len())
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

// IDOf returns the dense id of a package, or 0 if it is not in the
// repository.
func (idx *RepoIndex) IDOf(p types.Package) int {
	id, ok := idx.idOf[PackageString(p)]
	if !ok {
		return 0
	}
	return id
}

// PackageOf returns the package for an id. The caller must pass a
// valid id (1..N); this is an internal invariant, not user input.
func (idx *RepoIndex) PackageOf(id int) types.Package {
	return idx.packages[id-1]
}

// PropertiesOf returns the depends/conflicts/size of an id.
func (idx *RepoIndex) PropertiesOf(id int) types.PackageProperties {
	return idx.properties[id-1]
}

// SizeOf returns the install cost of an id.
func (idx *RepoIndex) SizeOf(id int) uint64 {
	return idx.properties[id-1].Size
}
