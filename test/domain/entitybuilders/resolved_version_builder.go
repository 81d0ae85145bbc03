//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/depup-io/depup/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ResolvedVersionBuilder helps create test resolution results with a fluent interface.
type ResolvedVersionBuilder struct {
	*testkit.BaseBuilder
	name       string
	current    string
	latest     string
	updateType entities.UpdateType
}

// NewResolvedVersionBuilder creates a new builder with sensible defaults.
func NewResolvedVersionBuilder() *ResolvedVersionBuilder {
	return &ResolvedVersionBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "requests",
		current:     "2.29.0",
		latest:      "2.30.0",
		updateType:  entities.UpdateMinor,
	}
}

// WithName sets the package name.
func (b *ResolvedVersionBuilder) WithName(name string) *ResolvedVersionBuilder {
	b.name = name
	return b
}

// WithCurrent sets the declared version.
func (b *ResolvedVersionBuilder) WithCurrent(version string) *ResolvedVersionBuilder {
	b.current = version
	return b
}

// WithLatest sets the latest published version.
func (b *ResolvedVersionBuilder) WithLatest(version string) *ResolvedVersionBuilder {
	b.latest = version
	return b
}

// WithUpdateType sets the update classification.
func (b *ResolvedVersionBuilder) WithUpdateType(updateType entities.UpdateType) *ResolvedVersionBuilder {
	b.updateType = updateType
	return b
}

// Build creates the resolution result (satisfies testkit.Builder interface).
func (b *ResolvedVersionBuilder) Build() interface{} {
	return b.BuildResolvedVersion()
}

// BuildResolvedVersion creates the resolution result with a concrete return type.
func (b *ResolvedVersionBuilder) BuildResolvedVersion() entities.ResolvedVersion {
	return entities.ResolvedVersion{
		Name:       b.name,
		Current:    b.current,
		Latest:     b.latest,
		UpdateType: b.updateType,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ResolvedVersionBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "requests"
	b.current = "2.29.0"
	b.latest = "2.30.0"
	b.updateType = entities.UpdateMinor
	return b
}

// Clone creates a deep copy of the ResolvedVersionBuilder.
func (b *ResolvedVersionBuilder) Clone() testkit.Builder {
	return &ResolvedVersionBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		current:     b.current,
		latest:      b.latest,
		updateType:  b.updateType,
	}
}
