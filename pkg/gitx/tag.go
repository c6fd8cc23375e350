package gitx

import (
	"fmt"
	"strconv"
	"strings"
)

// Part names the version component a bump applies to.
type Part int

const (
	PartMajor Part = iota
	PartMinor
	PartPatch
)

// String returns the lowercase name of the part.
func (p Part) String() string {
	switch p {
	case PartMajor:
		return "major"
	case PartMinor:
		return "minor"
	case PartPatch:
		return "patch"
	default:
		return "unknown"
	}
}

// Tag is a release tag of the form <prefix>MAJOR.MINOR.PATCH.
type Tag struct {
	Prefix string
	Major  int
	Minor  int
	Patch  int
}

// ParseTag parses a tag name. The prefix is required, followed by
// exactly three dot-separated non-negative integers.
func ParseTag(prefix, name string) (Tag, error) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return Tag{}, fmt.Errorf("tag %q does not start with prefix %q", name, prefix)
	}
	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return Tag{}, fmt.Errorf("tag %q is not of the form %sMAJOR.MINOR.PATCH", name, prefix)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Tag{}, fmt.Errorf("tag %q has a non-numeric component %q", name, p)
		}
		nums[i] = n
	}
	return Tag{Prefix: prefix, Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the tag with its prefix, e.g. "v1.2.3".
func (t Tag) String() string {
	return fmt.Sprintf("%s%d.%d.%d", t.Prefix, t.Major, t.Minor, t.Patch)
}

// Compare orders tags numerically by (major, minor, patch). It
// returns -1 when t is older than other, 0 when equal, +1 when
// newer. Prefixes do not participate in the ordering.
func (t Tag) Compare(other Tag) int {
	if c := cmpInt(t.Major, other.Major); c != 0 {
		return c
	}
	if c := cmpInt(t.Minor, other.Minor); c != 0 {
		return c
	}
	return cmpInt(t.Patch, other.Patch)
}

// Less reports whether t is an older version than other.
func (t Tag) Less(other Tag) bool { return t.Compare(other) < 0 }

// Bump returns a copy with the given part incremented and every
// lower part reset to zero.
func (t Tag) Bump(part Part) Tag {
	switch part {
	case PartMajor:
		t.Major++
		t.Minor = 0
		t.Patch = 0
	case PartMinor:
		t.Minor++
		t.Patch = 0
	case PartPatch:
		t.Patch++
	}
	return t
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
