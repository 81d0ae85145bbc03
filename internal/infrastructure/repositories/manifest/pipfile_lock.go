package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/depup-io/depup/internal/domain/entities"
)

const pipfileLockFileName = "Pipfile.lock"

type pipfileLockEntry struct {
	Version string `json:"version"`
}

type pipfileLockFile struct {
	Default map[string]pipfileLockEntry `json:"default"`
	Develop map[string]pipfileLockEntry `json:"develop"`
}

// parsePipfileLock extracts the resolved package set from a Pipfile.lock
// file. Versions already carry the "==" operator.
func parsePipfileLock(path, sourceFile string) ([]entities.DeclaredDependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file pipfileLockFile
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var deps []entities.DeclaredDependency
	for _, section := range []map[string]pipfileLockEntry{file.Default, file.Develop} {
		for name, entry := range section {
			if entry.Version == "" {
				continue
			}
			deps = append(deps, entities.DeclaredDependency{
				Name:       name,
				Specifier:  entry.Version,
				SourceFile: sourceFile,
			})
		}
	}
	return deps, nil
}
