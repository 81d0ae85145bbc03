package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/depup-io/depup/internal/domain/entities"
	"github.com/depup-io/depup/internal/domain/repositories"
)

// Core tooling packages that are never worth reporting on.
var ignoredPackages = map[string]bool{
	"pip":                true,
	"setuptools":         true,
	"wheel":              true,
	"pkginfo":            true,
	"distlib":            true,
	"virtualenv":         true,
	"pip-tools":          true,
	"typing-extensions":  true,
	"charset-normalizer": true,
	"idna":               true,
	"urllib3":            true,
}

// VersionResolver resolves the latest version of each dependency against a
// package index using a bounded pool of concurrent workers.
type VersionResolver struct {
	index repositories.IndexRepository
}

// NewVersionResolver creates a new VersionResolver backed by the given index.
func NewVersionResolver(index repositories.IndexRepository) *VersionResolver {
	return &VersionResolver{index: index}
}

// Resolve looks up the latest version for every non-ignored dependency.
// Lookups run concurrently, bounded by settings.Workers, and results arrive
// in completion order. A failed lookup never fails the batch: the entry
// degrades to an empty latest version classified as no update. The only
// batch-level error is a context already cancelled before dispatch.
func (it *VersionResolver) Resolve(
	ctx context.Context,
	settings *entities.Settings,
	deps []entities.DeclaredDependency,
) ([]entities.ResolvedVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates := it.filterIgnored(settings, deps)
	if len(candidates) == 0 {
		return nil, nil
	}

	workers := settings.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan entities.DeclaredDependency, len(candidates))
	results := make(chan entities.ResolvedVersion, len(candidates))

	for i := 0; i < workers; i++ {
		go func() {
			for dep := range jobs {
				results <- it.resolveOne(ctx, settings, dep)
			}
		}()
	}

	for _, dep := range candidates {
		jobs <- dep
	}
	close(jobs)

	resolved := make([]entities.ResolvedVersion, 0, len(candidates))
	for range candidates {
		resolved = append(resolved, <-results)
	}
	return resolved, nil
}

// resolveOne performs a single index lookup under the configured timeout.
func (it *VersionResolver) resolveOne(
	ctx context.Context,
	settings *entities.Settings,
	dep entities.DeclaredDependency,
) entities.ResolvedVersion {
	current := entities.NormalizeSpecifier(dep.Specifier)

	lookupCtx, cancel := context.WithTimeout(ctx, settings.RequestTimeout())
	defer cancel()

	latest, err := it.index.LatestVersion(lookupCtx, settings.IndexURL, dep.Name)
	if err != nil {
		logger.Debugf("Failed to resolve %s: %v", dep.Name, err)
		return entities.ResolvedVersion{
			Name:       dep.Name,
			Current:    current,
			UpdateType: entities.UpdateNone,
		}
	}

	return entities.ResolvedVersion{
		Name:       dep.Name,
		Current:    current,
		Latest:     latest,
		UpdateType: entities.Classify(current, latest),
	}
}

// filterIgnored drops built-in tooling packages and user-configured ignores,
// deduplicating by lowercase name while keeping first-seen order.
func (it *VersionResolver) filterIgnored(
	settings *entities.Settings,
	deps []entities.DeclaredDependency,
) []entities.DeclaredDependency {
	extra := make(map[string]bool, len(settings.IgnorePackages))
	for _, name := range settings.IgnorePackages {
		extra[strings.ToLower(name)] = true
	}

	seen := make(map[string]bool, len(deps))
	candidates := make([]entities.DeclaredDependency, 0, len(deps))
	for _, dep := range deps {
		key := strings.ToLower(dep.Name)
		if ignoredPackages[key] || extra[key] || seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, dep)
	}
	return candidates
}
