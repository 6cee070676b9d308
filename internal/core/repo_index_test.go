package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depsolve-judge/internal/types"
)

func mustPackage(t *testing.T, raw string) types.Package {
	t.Helper()
	p, err := ParsePackage(raw)
	require.NoError(t, err)
	return p
}

func TestNewRepoIndexAssignsDenseIDsInOrder(t *testing.T) {
	entries := []types.RepositoryEntry{
		{Package: mustPackage(t, "a=1.0"), Properties: types.PackageProperties{Size: 10}},
		{Package: mustPackage(t, "b=1.0"), Properties: types.PackageProperties{Size: 20}},
	}
	idx, err := NewRepoIndex(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []int{1, 2}, idx.IDs())
	assert.Equal(t, 1, idx.IDOf(entries[0].Package))
	assert.Equal(t, 2, idx.IDOf(entries[1].Package))
	assert.Equal(t, uint64(10), idx.SizeOf(1))
	assert.Equal(t, uint64(20), idx.SizeOf(2))
}

func TestNewRepoIndexRejectsDuplicates(t *testing.T) {
	entries := []types.RepositoryEntry{
		{Package: mustPackage(t, "a=1.0")},
		{Package: mustPackage(t, "a=1.0")},
	}
	_, err := NewRepoIndex(context.Background(), entries)
	require.Error(t, err)
}

func TestRepoIndexIDOfUnknownPackageIsZero(t *testing.T) {
	idx, err := NewRepoIndex(context.Background(), []types.RepositoryEntry{
		{Package: mustPackage(t, "a=1.0")},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, idx.IDOf(mustPackage(t, "b=1.0")))
}

func TestRepoIndexPackageOfRoundTrip(t *testing.T) {
	entries := []types.RepositoryEntry{
		{Package: mustPackage(t, "a=1.0")},
		{Package: mustPackage(t, "a=2.0")},
	}
	idx, err := NewRepoIndex(context.Background(), entries)
	require.NoError(t, err)
	assert.True(t, PackageEqual(entries[0].Package, idx.PackageOf(1)))
	assert.True(t, PackageEqual(entries[1].Package, idx.PackageOf(2)))
}
