package core

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultPackFormat is used for any version that can't be parsed; unrecognised versions are assumed to be recent
const DefaultPackFormat = 15

// InstalledSuffix is appended to version IDs that are already installed in the game directory
const InstalledSuffix = " (Installed)"

type packFormatRule struct {
	Constraint *semver.Constraints
	Format     int
}

// Patch-level rules must come before the rule covering their minor version
var packFormatRules = []packFormatRule{
	{mustConstraint(">= 1.20.3, <= 1.20.4"), 22},
	{mustConstraint("= 1.20.2"), 18},
	{mustConstraint(">= 1.20"), 15},
	{mustConstraint("= 1.19.4"), 13},
	{mustConstraint("= 1.19.3"), 12},
	{mustConstraint("~1.19"), 9},
	{mustConstraint("~1.18"), 8},
	{mustConstraint("~1.17"), 7},
	{mustConstraint(">= 1.15"), 5},
	{mustConstraint(">= 1.13"), 4},
	{mustConstraint(">= 1.11"), 3},
	{mustConstraint(">= 1.9"), 2},
}

const oldestPackFormat = 1

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// StripVersionDecoration removes the " (Installed)" marker and surrounding whitespace from a displayed version ID
func StripVersionDecoration(versionID string) string {
	return strings.TrimSpace(strings.ReplaceAll(versionID, InstalledSuffix, ""))
}

// ResolvePackFormat gets the resource pack format understood by the given Minecraft version.
// It never fails: snapshots and other unparsable versions get DefaultPackFormat.
func ResolvePackFormat(versionID string) int {
	v, ok := parseGameVersion(StripVersionDecoration(versionID))
	if !ok {
		return DefaultPackFormat
	}
	for _, rule := range packFormatRules {
		if rule.Constraint.Check(v) {
			return rule.Format
		}
	}
	return oldestPackFormat
}

// KnownPackFormats returns every format ResolvePackFormat can return, newest first
func KnownPackFormats() []int {
	formats := make([]int, 0, len(packFormatRules)+1)
	for _, rule := range packFormatRules {
		formats = append(formats, rule.Format)
	}
	return append(formats, oldestPackFormat)
}

// parseGameVersion reads major.minor[.patch] from a release version ID.
// The patch is taken from the leading digits of the third component, so 1.20.2-rc1 is treated as 1.20.2.
func parseGameVersion(version string) (*semver.Version, bool) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return nil, false
	}
	major, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return nil, false
	}
	minor, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, false
	}
	var patch uint64
	if len(parts) > 2 {
		digits := parts[2]
		if i := strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
			digits = digits[:i]
		}
		if len(digits) > 0 {
			patch, err = strconv.ParseUint(digits, 10, 64)
			if err != nil {
				patch = 0
			}
		}
	}
	return semver.New(major, minor, patch, "", ""), true
}
