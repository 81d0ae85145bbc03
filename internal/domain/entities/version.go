package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

var specifierOperators = []string{"==", ">=", "<=", "~=", "!=", "<", ">", "^", "~"}

// NormalizeSpecifier strips a single leading comparison operator from a
// version specifier and trims whitespace. A bare wildcard or an empty
// specifier normalizes to the empty string (unknown version).
func NormalizeSpecifier(spec string) string {
	out := strings.TrimSpace(spec)
	for _, op := range specifierOperators {
		if strings.HasPrefix(out, op) {
			out = strings.TrimSpace(strings.TrimPrefix(out, op))
			break
		}
	}
	if out == "*" {
		return ""
	}
	return out
}

// Classify compares a declared version against the latest published one and
// returns the update magnitude. Unknown or unparsable versions on either
// side classify as none, as does a latest that is not strictly newer.
func Classify(current, latest string) UpdateType {
	currentVer := normalizeVersion(current)
	latestVer := normalizeVersion(latest)

	if !semver.IsValid(currentVer) || !semver.IsValid(latestVer) {
		return UpdateNone
	}
	if semver.Compare(latestVer, currentVer) <= 0 {
		return UpdateNone
	}
	if semver.Major(latestVer) != semver.Major(currentVer) {
		return UpdateMajor
	}

	currentParts := strings.Split(strings.TrimPrefix(currentVer, "v"), ".")
	latestParts := strings.Split(strings.TrimPrefix(latestVer, "v"), ".")
	if len(currentParts) > 1 && len(latestParts) > 1 && currentParts[1] != latestParts[1] {
		return UpdateMinor
	}
	return UpdatePatch
}

// normalizeVersion ensures the version has a "v" prefix for semver parsing
// and pads missing minor/patch components.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	switch strings.Count(version, ".") {
	case 0:
		version += ".0.0"
	case 1:
		version += ".0"
	}
	return version
}
