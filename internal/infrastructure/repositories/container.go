package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/depup-io/depup/internal/domain/repositories"
	"github.com/depup-io/depup/internal/infrastructure/repositories/manifest"
	"github.com/depup-io/depup/internal/infrastructure/repositories/pip"
	"github.com/depup-io/depup/internal/infrastructure/repositories/pypi"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(pypi.NewIndexRepository); err != nil {
		return err
	}
	if err := container.Provide(pip.NewInstallerRepository); err != nil {
		return err
	}
	if err := container.Provide(manifest.NewParserRepository); err != nil {
		return err
	}

	// Register rewriter registry with all rewriter implementations
	if err := container.Provide(func() *RewriterRegistry {
		reg := NewRewriterRegistry()
		reg.Register(manifest.NewRequirementsRewriter())
		reg.Register(manifest.NewPyprojectRewriter())
		reg.Register(manifest.NewPipfileRewriter())
		return reg
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *pypi.IndexRepository) domainRepos.IndexRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *pip.InstallerRepository) domainRepos.InstallerRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *manifest.ParserRepository) domainRepos.ParserRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
