package repositories

import (
	"context"

	"github.com/depup-io/depup/internal/domain/entities"
)

// InstallerRepository abstracts the package manager used to install
// dependencies into the active environment.
type InstallerRepository interface {
	// Install upgrades a package to an exact version in the environment.
	Install(ctx context.Context, pkg, version string) error

	// ListInstalled returns the packages currently installed in the
	// environment, with exact versions and no source file.
	ListInstalled(ctx context.Context) ([]entities.DeclaredDependency, error)
}
