package entities

import "strings"

// AllowedUpdateTypes builds the set of update magnitudes a plan should act
// on. With no filter enabled every actionable magnitude is allowed.
func AllowedUpdateTypes(onlyPatch, onlyMinor, onlyMajor bool) map[UpdateType]bool {
	if !onlyPatch && !onlyMinor && !onlyMajor {
		return map[UpdateType]bool{UpdatePatch: true, UpdateMinor: true, UpdateMajor: true}
	}
	allowed := make(map[UpdateType]bool, 3)
	if onlyPatch {
		allowed[UpdatePatch] = true
	}
	if onlyMinor {
		allowed[UpdateMinor] = true
	}
	if onlyMajor {
		allowed[UpdateMajor] = true
	}
	return allowed
}

// PlanUpgrades turns resolution results into upgrade intents. Each declared
// occurrence is planned independently against its own source file, so a
// package pinned in two manifests yields two intents. Dependencies without
// a source file fall back to defaultManifest.
func PlanUpgrades(
	declared []DeclaredDependency,
	resolved []ResolvedVersion,
	nameFilter []string,
	allowed map[UpdateType]bool,
	defaultManifest string,
) []UpgradeIntent {
	index := IndexByName(resolved)

	wanted := make(map[string]bool, len(nameFilter))
	for _, name := range nameFilter {
		wanted[strings.ToLower(name)] = true
	}

	var intents []UpgradeIntent
	for _, dep := range declared {
		key := strings.ToLower(dep.Name)
		if len(wanted) > 0 && !wanted[key] {
			continue
		}
		info, ok := index[key]
		if !ok || info.UpdateType == UpdateNone || info.Latest == "" {
			continue
		}
		if !allowed[info.UpdateType] {
			continue
		}
		source := dep.SourceFile
		if source == "" {
			source = defaultManifest
		}
		intents = append(intents, UpgradeIntent{
			Name:          dep.Name,
			CurrentSpec:   dep.Specifier,
			TargetVersion: info.Latest,
			SourceFile:    source,
		})
	}
	return intents
}
