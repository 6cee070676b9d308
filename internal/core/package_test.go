package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackage(t *testing.T) {
	p, err := ParsePackage("libfoo=1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "libfoo", p.Name)
	assert.Equal(t, "1.2.3", VersionString(p.Version))
}

func TestParsePackageBadFormat(t *testing.T) {
	for _, raw := range []string{"", "libfoo", "=1.0", "libfoo=", "lib$foo=1.0"} {
		_, err := ParsePackage(raw)
		require.Errorf(t, err, "expected error for %q", raw)
	}
}

func TestPackageStringRoundTrip(t *testing.T) {
	p, err := ParsePackage("libfoo=1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "libfoo=1.2.3", PackageString(p))
}

func TestPackageEqual(t *testing.T) {
	a, _ := ParsePackage("libfoo=1.2.0")
	b, _ := ParsePackage("libfoo=1.2.0")
	c, _ := ParsePackage("libfoo=1.3")
	d, _ := ParsePackage("libfoo=1.2")
	assert.True(t, PackageEqual(a, b))
	assert.False(t, PackageEqual(a, c))
	assert.False(t, PackageEqual(a, d))
}
