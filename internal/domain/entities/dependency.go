package entities

import "strings"

// UpdateType classifies the semantic distance between a declared version
// and the latest published version.
type UpdateType string

const (
	UpdateNone  UpdateType = "none"
	UpdatePatch UpdateType = "patch"
	UpdateMinor UpdateType = "minor"
	UpdateMajor UpdateType = "major"
)

// DeclaredDependency represents a single declared dependency occurrence.
// Package identity is case-insensitive; multiple entries may exist for the
// same name (one per file) and are never merged.
type DeclaredDependency struct {
	Name       string // Package name as written in the source
	Specifier  string // Version specifier, operator retained (may be empty)
	SourceFile string // File where it was declared; empty for environment entries
}

// ResolvedVersion holds the outcome of one index lookup for a dependency.
type ResolvedVersion struct {
	Name       string     // Package name
	Current    string     // Declared version, operator stripped (may be empty)
	Latest     string     // Latest published version; empty when resolution failed
	UpdateType UpdateType // none when either side is unknown or latest <= current
}

// UpgradeIntent is a planned, not-yet-executed upgrade for one package in
// one file. TargetVersion is always a concrete resolved version.
type UpgradeIntent struct {
	Name          string // Package name
	CurrentSpec   string // Specifier as originally written, operator retained
	TargetVersion string // Bare version string, no operator
	SourceFile    string // File the rewrite must target
}

// UpgradeOutcome records the result of one executed or simulated intent.
type UpgradeOutcome struct {
	Name      string
	FromSpec  string
	ToVersion string
	Success   bool
	Err       string // Captured error text; empty on success
	DryRun    bool
}

// ReportRow is the stable per-dependency reporting shape consumed by the
// table, JSON and Markdown renderers.
type ReportRow struct {
	Name       string     `json:"name"`
	Declared   string     `json:"declared"`
	Latest     string     `json:"latest"`
	UpdateType UpdateType `json:"update_type"`
	Source     string     `json:"source"`
}

// IndexByName indexes resolved versions by lowercase package name.
// Resolver output arrives in non-deterministic order, so consumers
// look results up by name instead of position.
func IndexByName(resolved []ResolvedVersion) map[string]ResolvedVersion {
	index := make(map[string]ResolvedVersion, len(resolved))
	for _, info := range resolved {
		index[strings.ToLower(info.Name)] = info
	}
	return index
}

// BuildReportRows joins declared dependencies with their resolution results,
// preserving the declared order.
func BuildReportRows(declared []DeclaredDependency, resolved []ResolvedVersion) []ReportRow {
	index := IndexByName(resolved)

	rows := make([]ReportRow, 0, len(declared))
	for _, dep := range declared {
		row := ReportRow{
			Name:       dep.Name,
			Declared:   dep.Specifier,
			UpdateType: UpdateNone,
			Source:     dep.SourceFile,
		}
		if info, ok := index[strings.ToLower(dep.Name)]; ok {
			row.Latest = info.Latest
			row.UpdateType = info.UpdateType
		}
		rows = append(rows, row)
	}
	return rows
}
