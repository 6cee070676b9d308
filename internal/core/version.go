package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve-judge/internal/types"
)

var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// ParseVersion parses a dotted sequence of non-negative integers, e.g.
// "1.2.10". Anything else fails with "bad version format".
func ParseVersion(raw string) (types.Version, error) {
	if !versionPattern.MatchString(raw) {
		return types.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad version format: " + raw)
	}
	parts := strings.Split(raw, ".")
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return types.Version{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad version format: " + raw).
				WithCause(err)
		}
		nums[i] = n
	}
	return types.Version{Nums: nums}, nil
}

// CompareVersions returns -1, 0, or 1 comparing a to b the way raw
// tuple comparison does: componentwise over the shared prefix, and if
// one tuple is a prefix of the other the shorter one is less. No
// padding: (1) and (1, 0) are not equal, (1) is less.
func CompareVersions(a, b types.Version) int {
	n := len(a.Nums)
	if len(b.Nums) < n {
		n = len(b.Nums)
	}
	for i := 0; i < n; i++ {
		switch {
		case a.Nums[i] < b.Nums[i]:
			return -1
		case a.Nums[i] > b.Nums[i]:
			return 1
		}
	}
	switch {
	case len(a.Nums) < len(b.Nums):
		return -1
	case len(a.Nums) > len(b.Nums):
		return 1
	}
	return 0
}

// VersionString renders a Version in canonical dotted form.
func VersionString(v types.Version) string {
	parts := make([]string, len(v.Nums))
	for i, n := range v.Nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
