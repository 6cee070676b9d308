package core

import (
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve-judge/internal/types"
)

var packageNamePattern = regexp.MustCompile(`^[.+a-zA-Z0-9-]+$`)

// ParsePackage parses "name=version" into a Package.
func ParsePackage(raw string) (types.Package, error) {
	name, version, ok := strings.Cut(raw, "=")
	if !ok || name == "" || version == "" {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad package format: " + raw)
	}
	if !packageNamePattern.MatchString(name) {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad package format: " + raw)
	}
	v, err := ParseVersion(version)
	if err != nil {
		return types.Package{}, err
	}
	return types.Package{Name: name, Version: v}, nil
}

// PackageString renders a Package in canonical "name=version" form.
func PackageString(p types.Package) string {
	return p.Name + "=" + VersionString(p.Version)
}

// PackageEqual reports whether two packages have the same name and
// version.
func PackageEqual(a, b types.Package) bool {
	return a.Name == b.Name && CompareVersions(a.Version, b.Version) == 0
}
