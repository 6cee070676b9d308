package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve-judge/internal/types"
)

// ParseRange parses a range string: "name", "name=V", "name<V",
// "name<=V", "name>V", or "name>=V". The package-name grammar never
// contains '=', '<', or '>', so the first such character unambiguously
// starts the operator.
func ParseRange(raw string) (types.PackageRange, error) {
	idx := strings.IndexAny(raw, "=<>")
	if idx < 0 {
		if !packageNamePattern.MatchString(raw) {
			return types.PackageRange{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad package range format: " + raw)
		}
		return types.PackageRange{Name: raw}, nil
	}

	name := raw[:idx]
	rest := raw[idx:]
	if name == "" || !packageNamePattern.MatchString(name) {
		return types.PackageRange{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad package range format: " + raw)
	}

	op, versionStr, ok := splitRangeOp(rest)
	if !ok || versionStr == "" {
		return types.PackageRange{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad package range format: " + raw)
	}
	v, err := ParseVersion(versionStr)
	if err != nil {
		return types.PackageRange{}, err
	}

	r := types.PackageRange{Name: name}
	switch op {
	case "=":
		r.Min, r.Max, r.Inclusive = &v, &v, true
	case "<":
		r.Max = &v
	case "<=":
		r.Max, r.Inclusive = &v, true
	case ">":
		r.Min = &v
	case ">=":
		r.Min, r.Inclusive = &v, true
	}
	return r, nil
}

// splitRangeOp splits "<operator><version>" into its operator token
// and version substring. Two-character operators must be tried before
// their one-character prefix to avoid misreading "<=1" as "<" + "=1".
func splitRangeOp(rest string) (op string, version string, ok bool) {
	for _, candidate := range []string{"<=", ">=", "=", "<", ">"} {
		if strings.HasPrefix(rest, candidate) {
			return candidate, rest[len(candidate):], true
		}
	}
	return "", "", false
}

// RangeHas reports whether a package falls within a range: same name,
// and within both bounds (inclusive or exclusive per r.Inclusive).
func RangeHas(r types.PackageRange, p types.Package) bool {
	if r.Name != p.Name {
		return false
	}
	if r.Min != nil {
		cmp := CompareVersions(p.Version, *r.Min)
		if r.Inclusive {
			if cmp < 0 {
				return false
			}
		} else if cmp <= 0 {
			return false
		}
	}
	if r.Max != nil {
		cmp := CompareVersions(p.Version, *r.Max)
		if r.Inclusive {
			if cmp > 0 {
				return false
			}
		} else if cmp >= 0 {
			return false
		}
	}
	return true
}

// RangeString renders a range in canonical form: a range carries at
// most one of min/max except when Inclusive and both are equal, in
// which case it renders "=V".
func RangeString(r types.PackageRange) string {
	switch {
	case r.Min == nil && r.Max == nil:
		return r.Name
	case r.Min != nil && r.Max != nil:
		return r.Name + "=" + VersionString(*r.Min)
	case r.Max != nil:
		if r.Inclusive {
			return r.Name + "<=" + VersionString(*r.Max)
		}
		return r.Name + "<" + VersionString(*r.Max)
	default:
		if r.Inclusive {
			return r.Name + ">=" + VersionString(*r.Min)
		}
		return r.Name + ">" + VersionString(*r.Min)
	}
}

// RangeKey is a structural, comparable identity for a range, used to
// deduplicate resolver lookups (range equality is name+bounds+inclusive,
// not pointer identity).
type RangeKey struct {
	Name      string
	Min       string
	Max       string
	Inclusive bool
}

// KeyOf derives the deduplication key for a range.
func KeyOf(r types.PackageRange) RangeKey {
	key := RangeKey{Name: r.Name, Inclusive: r.Inclusive}
	if r.Min != nil {
		key.Min = VersionString(*r.Min)
	}
	if r.Max != nil {
		key.Max = VersionString(*r.Max)
	}
	return key
}
