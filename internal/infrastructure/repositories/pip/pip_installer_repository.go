package pip

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
)

// InstallerRepository drives pip through the detected Python interpreter.
type InstallerRepository struct{}

// NewInstallerRepository creates a new pip-backed installer repository.
func NewInstallerRepository() *InstallerRepository {
	return &InstallerRepository{}
}

// Install upgrades a package to an exact version via
// `python -m pip install --upgrade name==version`.
func (it *InstallerRepository) Install(ctx context.Context, pkg, version string) error {
	pythonBinary, err := findPythonBinary()
	if err != nil {
		return fmt.Errorf("python binary not found: %w", err)
	}

	spec := fmt.Sprintf("%s==%s", pkg, version)
	logger.Infof("Installing %s", spec)

	cmd := exec.CommandContext(ctx, pythonBinary, "-m", "pip", "install", "--upgrade", spec)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		return fmt.Errorf("pip install %s failed: %w\n%s", spec, runErr, stderr.String())
	}
	return nil
}

// findPythonBinary locates a Python interpreter, preferring python3.
func findPythonBinary() (string, error) {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	commonPaths := []string{
		"/usr/bin/python3",
		"/usr/local/bin/python3",
		"/usr/bin/python",
		"/usr/local/bin/python",
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		commonPaths = append(commonPaths, filepath.Join(home, ".local", "bin", "python3"))
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no python3 or python binary on PATH")
}
