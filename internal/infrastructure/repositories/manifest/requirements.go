package manifest

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/depup-io/depup/internal/domain/entities"
	domainRepos "github.com/depup-io/depup/internal/domain/repositories"
)

const requirementsFileName = "requirements.txt"

// Matches "name[extras] <op> version" with optional trailing markers/comments.
var requirementPattern = regexp.MustCompile(
	`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)(\[[^\]]*])?\s*([<>=!~][=<>!~]*\s*[^;#]*)?`,
)

var separatorRun = regexp.MustCompile(`[-_.]+`)

// parseRequirements extracts declared dependencies from a pip requirements
// file. Comment lines, blank lines, and option lines (-r, -e, --hash) are
// skipped.
func parseRequirements(path, sourceFile string) ([]entities.DeclaredDependency, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var deps []entities.DeclaredDependency

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		match := requirementPattern.FindStringSubmatch(line)
		if match == nil || match[1] == "" {
			continue
		}
		deps = append(deps, entities.DeclaredDependency{
			Name:       match[1],
			Specifier:  strings.TrimSpace(match[3]),
			SourceFile: sourceFile,
		})
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return deps, nil
}

// RequirementsRewriter rewrites pinned versions in requirements.txt files.
type RequirementsRewriter struct{}

// NewRequirementsRewriter creates a new requirements.txt rewriter.
func NewRequirementsRewriter() *RequirementsRewriter {
	return &RequirementsRewriter{}
}

// FileName returns the file this rewriter handles.
func (it *RequirementsRewriter) FileName() string {
	return requirementsFileName
}

// Rewrite pins pkg to version on its declaring line, touching only the
// version token. Whitespace, extras, environment markers, and comments on
// the line survive byte for byte, as does every other line in the file.
func (it *RequirementsRewriter) Rewrite(path, pkg, version string) (domainRepos.RewriteResult, error) {
	var result domainRepos.RewriteResult

	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", path, err)
	}

	linePattern, err := regexp.Compile(
		`(?i)^(\s*)(` + namePattern(pkg) + `)((?:\[[^\]]*])?\s*[<>=!~]+\s*)([^;\s#]+)(.*)$`,
	)
	if err != nil {
		return result, fmt.Errorf("failed to build pattern for %s: %w", pkg, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		match := linePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if match[4] == "*" {
			result.Notes = append(result.Notes, fmt.Sprintf("%s uses a wildcard version, left untouched", pkg))
			continue
		}
		lines[i] = match[1] + match[2] + match[3] + version + match[5]
		result.Changed = true
	}

	if !result.Changed {
		return result, nil
	}

	if err = backupFile(path); err != nil {
		return result, err
	}
	if err = writeFileAtomic(path, []byte(strings.Join(lines, "\n"))); err != nil {
		return result, err
	}
	return result, nil
}

// namePattern builds a case-insensitive name matcher that treats runs of
// dots, dashes and underscores as interchangeable (PEP 503 equivalence).
func namePattern(pkg string) string {
	parts := separatorRun.Split(pkg, -1)
	escaped := make([]string, 0, len(parts))
	for _, part := range parts {
		escaped = append(escaped, regexp.QuoteMeta(part))
	}
	return strings.Join(escaped, `[-_.]+`)
}
