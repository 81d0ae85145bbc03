package manifest

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	tomlv1 "github.com/pelletier/go-toml"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/depup-io/depup/internal/domain/entities"
	domainRepos "github.com/depup-io/depup/internal/domain/repositories"
)

const pyprojectFileName = "pyproject.toml"

type pyprojectFile struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// parsePyproject extracts declared dependencies from both PEP 621 project
// tables and Poetry tool tables.
func parsePyproject(path, sourceFile string) ([]entities.DeclaredDependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file pyprojectFile
	if err = tomlv2.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var deps []entities.DeclaredDependency
	appendRequirement := func(entry string) {
		match := requirementPattern.FindStringSubmatch(strings.TrimSpace(entry))
		if match == nil || match[1] == "" {
			return
		}
		deps = append(deps, entities.DeclaredDependency{
			Name:       match[1],
			Specifier:  strings.TrimSpace(match[3]),
			SourceFile: sourceFile,
		})
	}

	for _, entry := range file.Project.Dependencies {
		appendRequirement(entry)
	}
	groups := make([]string, 0, len(file.Project.OptionalDependencies))
	for group := range file.Project.OptionalDependencies {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	for _, group := range groups {
		for _, entry := range file.Project.OptionalDependencies[group] {
			appendRequirement(entry)
		}
	}

	deps = append(deps, poetryDependencies(file.Tool.Poetry.Dependencies, sourceFile)...)
	deps = append(deps, poetryDependencies(file.Tool.Poetry.DevDependencies, sourceFile)...)
	return deps, nil
}

// poetryDependencies flattens a Poetry dependency table. The "python"
// interpreter constraint is not a package and is skipped, as are table
// entries (git refs, path deps, multi-constraint tables).
func poetryDependencies(table map[string]any, sourceFile string) []entities.DeclaredDependency {
	deps := make([]entities.DeclaredDependency, 0, len(table))
	for name, value := range table {
		if strings.EqualFold(name, "python") {
			continue
		}
		spec, ok := value.(string)
		if !ok {
			continue
		}
		deps = append(deps, entities.DeclaredDependency{
			Name:       name,
			Specifier:  spec,
			SourceFile: sourceFile,
		})
	}
	// Map iteration order is random, so sort for reproducible scans.
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
	return deps
}

// PyprojectRewriter rewrites versions in pyproject.toml files through the
// TOML document tree, so the file is re-serialized rather than patched
// textually.
type PyprojectRewriter struct{}

// NewPyprojectRewriter creates a new pyproject.toml rewriter.
func NewPyprojectRewriter() *PyprojectRewriter {
	return &PyprojectRewriter{}
}

// FileName returns the file this rewriter handles.
func (it *PyprojectRewriter) FileName() string {
	return pyprojectFileName
}

// Rewrite pins pkg to version in the PEP 621 dependency arrays and the
// Poetry dependency tables. Entries the format cannot safely pin (wildcards,
// git refs, path deps, table values) are left untouched and reported.
func (it *PyprojectRewriter) Rewrite(path, pkg, version string) (domainRepos.RewriteResult, error) {
	var result domainRepos.RewriteResult

	tree, err := tomlv1.LoadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if rewriteDependencyArray(tree, "project.dependencies", pkg, version, &result) {
		result.Changed = true
	}
	if optional, ok := tree.Get("project.optional-dependencies").(*tomlv1.Tree); ok {
		for _, group := range optional.Keys() {
			key := "project.optional-dependencies." + group
			if rewriteDependencyArray(tree, key, pkg, version, &result) {
				result.Changed = true
			}
		}
	}

	for _, key := range []string{"tool.poetry.dependencies", "tool.poetry.dev-dependencies"} {
		if rewritePoetryTable(tree, key, pkg, version, &result) {
			result.Changed = true
		}
	}

	if !result.Changed {
		return result, nil
	}

	serialized, err := tree.ToTomlString()
	if err != nil {
		return result, fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err = backupFile(path); err != nil {
		return result, err
	}
	if err = writeFileAtomic(path, []byte(serialized)); err != nil {
		return result, err
	}
	return result, nil
}

// rewriteDependencyArray updates a PEP 621 style string array in place.
func rewriteDependencyArray(
	tree *tomlv1.Tree,
	key, pkg, version string,
	result *domainRepos.RewriteResult,
) bool {
	changed := false
	update := func(entries []string) []string {
		for i, entry := range entries {
			updated, ok := rewritePEP621Entry(entry, pkg, version, result)
			if ok {
				entries[i] = updated
				changed = true
			}
		}
		return entries
	}

	switch value := tree.Get(key).(type) {
	case []string:
		tree.Set(key, update(value))
	case []any:
		entries := make([]string, 0, len(value))
		for _, item := range value {
			entry, ok := item.(string)
			if !ok {
				return false
			}
			entries = append(entries, entry)
		}
		tree.Set(key, update(entries))
	}
	return changed
}

// rewritePEP621Entry pins the version inside one requirement string,
// returning the updated entry and whether anything changed.
func rewritePEP621Entry(
	entry, pkg, version string,
	result *domainRepos.RewriteResult,
) (string, bool) {
	pattern, err := regexp.Compile(
		`(?i)^(\s*)(` + namePattern(pkg) + `)((?:\[[^\]]*])?\s*[<>=!~^]+\s*)([^;\s]+)(.*)$`,
	)
	if err != nil {
		return entry, false
	}

	match := pattern.FindStringSubmatch(entry)
	if match == nil {
		// Name-only match means an entry without a pinnable version.
		namesOnly := regexp.MustCompile(`(?i)^\s*(` + namePattern(pkg) + `)\s*$`)
		if namesOnly.MatchString(entry) {
			result.Notes = append(result.Notes,
				fmt.Sprintf("%s has no version constraint, left untouched", pkg))
		}
		return entry, false
	}
	if match[4] == "*" {
		result.Notes = append(result.Notes,
			fmt.Sprintf("%s uses a wildcard version, left untouched", pkg))
		return entry, false
	}
	return match[1] + match[2] + match[3] + version + match[5], true
}

// rewritePoetryTable updates a Poetry dependency table value for pkg.
func rewritePoetryTable(
	tree *tomlv1.Tree,
	key, pkg, version string,
	result *domainRepos.RewriteResult,
) bool {
	table, ok := tree.Get(key).(*tomlv1.Tree)
	if !ok {
		return false
	}

	changed := false
	for _, name := range table.Keys() {
		if !sameName(name, pkg) {
			continue
		}
		spec, isString := table.Get(name).(string)
		if !isString {
			result.Notes = append(result.Notes,
				fmt.Sprintf("%s uses a table constraint in %s, left untouched", pkg, key))
			continue
		}
		if spec == "*" {
			result.Notes = append(result.Notes,
				fmt.Sprintf("%s uses a wildcard version, left untouched", pkg))
			continue
		}
		table.Set(name, rewriteVersionLiteral(spec, version))
		changed = true
	}
	return changed
}

// rewriteVersionLiteral swaps the version in a Poetry constraint string
// while keeping its operator prefix.
func rewriteVersionLiteral(spec, version string) string {
	for _, op := range []string{"==", ">=", "<=", "~=", "!=", "^", "~"} {
		if strings.HasPrefix(spec, op) {
			return op + version
		}
	}
	return version
}

// sameName compares two package names under PEP 503 equivalence.
func sameName(a, b string) bool {
	normalize := func(name string) string {
		return separatorRun.ReplaceAllString(strings.ToLower(name), "-")
	}
	return normalize(a) == normalize(b)
}
