package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/depup-io/depup/internal/domain/entities"
)

type parseFunc func(path, sourceFile string) ([]entities.DeclaredDependency, error)

// Dependency files scanned per project, in a fixed order so the output is
// deterministic for a given tree.
var knownFiles = []struct {
	name  string
	parse parseFunc
}{
	{requirementsFileName, parseRequirements},
	{pyprojectFileName, parsePyproject},
	{pipfileFileName, parsePipfile},
	{poetryLockFileName, parsePoetryLock},
	{pipfileLockFileName, parsePipfileLock},
}

// ParserRepository discovers declared dependencies in a project directory.
type ParserRepository struct{}

// NewParserRepository creates a new manifest parser repository.
func NewParserRepository() *ParserRepository {
	return &ParserRepository{}
}

// ParseAll scans the project root for known dependency files and returns
// every declared occurrence. Entries from the same file keep their file
// order where the format has one; TOML and JSON table entries are sorted
// by name so repeated scans agree.
func (it *ParserRepository) ParseAll(root string) ([]entities.DeclaredDependency, error) {
	var all []entities.DeclaredDependency

	for _, known := range knownFiles {
		path := filepath.Join(root, known.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		deps, err := known.parse(path, known.name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", known.name, err)
		}
		logger.Debugf("Parsed %d dependencies from %s", len(deps), known.name)

		sortUnorderedFormats(known.name, deps)
		all = append(all, deps...)
	}
	return all, nil
}

// sortUnorderedFormats sorts entries from map-backed formats, whose
// iteration order is random.
func sortUnorderedFormats(fileName string, deps []entities.DeclaredDependency) {
	switch fileName {
	case pipfileFileName, pipfileLockFileName:
		sort.Slice(deps, func(i, j int) bool {
			return deps[i].Name < deps[j].Name
		})
	}
}
