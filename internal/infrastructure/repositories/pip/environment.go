package pip

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/depup-io/depup/internal/domain/entities"
)

type installedPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListInstalled returns the packages installed in the active environment
// via `pip list --format=json`. Entries carry exact versions and no source
// file.
func (it *InstallerRepository) ListInstalled(ctx context.Context) ([]entities.DeclaredDependency, error) {
	pythonBinary, err := findPythonBinary()
	if err != nil {
		return nil, fmt.Errorf("python binary not found: %w", err)
	}

	cmd := exec.CommandContext(ctx, pythonBinary, "-m", "pip", "list", "--format=json")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pip list failed: %w", err)
	}

	var packages []installedPackage
	if decodeErr := json.Unmarshal(output, &packages); decodeErr != nil {
		return nil, fmt.Errorf("failed to parse pip list output: %w", decodeErr)
	}

	deps := make([]entities.DeclaredDependency, 0, len(packages))
	for _, p := range packages {
		deps = append(deps, entities.DeclaredDependency{
			Name:      p.Name,
			Specifier: "==" + p.Version,
		})
	}
	return deps, nil
}
