package react

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed X.Y.Z framework version. Pre-release suffixes are
// stripped; range operators ('>', '>=', '^', '~') sometimes found in project
// metadata are tolerated and ignored.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a version string from project metadata. It returns nil
// (unknown version) rather than an error for strings it cannot make sense
// of; version-gated rules treat unknown as not-exempt.
func ParseVersion(raw string) *Version {
	v := strings.TrimSpace(raw)
	v = strings.TrimLeft(v, ">=<^~ \t")
	v = strings.TrimPrefix(v, "v")
	if v == "" {
		return nil
	}

	// Strip any pre-release or build suffix (e.g. "-beta.1", "+build").
	if idx := strings.IndexAny(v, "-+"); idx > 0 {
		v = v[:idx]
	}

	parts := strings.Split(v, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return nil
	}

	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil
		}
		nums[i] = n
	}

	return &Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}
}

// Less reports whether v is strictly older than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
