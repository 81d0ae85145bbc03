package manifest

import (
	"fmt"
	"os"

	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/depup-io/depup/internal/domain/entities"
)

const poetryLockFileName = "poetry.lock"

type poetryLockFile struct {
	Packages []struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// parsePoetryLock extracts the resolved package set from a poetry.lock
// file. Lock entries carry exact versions, recorded as "==" pins.
func parsePoetryLock(path, sourceFile string) ([]entities.DeclaredDependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file poetryLockFile
	if err = tomlv2.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	deps := make([]entities.DeclaredDependency, 0, len(file.Packages))
	for _, p := range file.Packages {
		if p.Name == "" || p.Version == "" {
			continue
		}
		deps = append(deps, entities.DeclaredDependency{
			Name:       p.Name,
			Specifier:  "==" + p.Version,
			SourceFile: sourceFile,
		})
	}
	return deps, nil
}
