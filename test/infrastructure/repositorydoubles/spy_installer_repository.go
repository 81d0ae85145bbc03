//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/depup-io/depup/internal/domain/entities"
	"github.com/depup-io/depup/internal/domain/repositories"
)

// InstallCall records a single invocation of Install.
type InstallCall struct {
	Package string
	Version string
}

// SpyInstallerRepository implements repositories.InstallerRepository as a
// configurable spy.
type SpyInstallerRepository struct {
	// --- Install ---
	InstallErr   error
	InstallCalls []InstallCall

	// --- ListInstalled ---
	Installed []entities.DeclaredDependency
	ListErr   error
}

var _ repositories.InstallerRepository = (*SpyInstallerRepository)(nil)

func (s *SpyInstallerRepository) Install(_ context.Context, pkg, version string) error {
	s.InstallCalls = append(s.InstallCalls, InstallCall{Package: pkg, Version: version})
	return s.InstallErr
}

func (s *SpyInstallerRepository) ListInstalled(_ context.Context) ([]entities.DeclaredDependency, error) {
	return s.Installed, s.ListErr
}
