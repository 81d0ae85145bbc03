//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/depup-io/depup/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DeclaredDependencyBuilder helps create test dependencies with a fluent interface.
type DeclaredDependencyBuilder struct {
	*testkit.BaseBuilder
	name       string
	specifier  string
	sourceFile string
}

// NewDeclaredDependencyBuilder creates a new builder with sensible defaults.
func NewDeclaredDependencyBuilder() *DeclaredDependencyBuilder {
	return &DeclaredDependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "requests",
		specifier:   "==2.29.0",
		sourceFile:  "requirements.txt",
	}
}

// WithName sets the package name.
func (b *DeclaredDependencyBuilder) WithName(name string) *DeclaredDependencyBuilder {
	b.name = name
	return b
}

// WithSpecifier sets the version specifier.
func (b *DeclaredDependencyBuilder) WithSpecifier(spec string) *DeclaredDependencyBuilder {
	b.specifier = spec
	return b
}

// WithSourceFile sets the declaring file.
func (b *DeclaredDependencyBuilder) WithSourceFile(file string) *DeclaredDependencyBuilder {
	b.sourceFile = file
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DeclaredDependencyBuilder) Build() interface{} {
	return b.BuildDeclaredDependency()
}

// BuildDeclaredDependency creates the dependency with a concrete return type.
func (b *DeclaredDependencyBuilder) BuildDeclaredDependency() entities.DeclaredDependency {
	return entities.DeclaredDependency{
		Name:       b.name,
		Specifier:  b.specifier,
		SourceFile: b.sourceFile,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DeclaredDependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "requests"
	b.specifier = "==2.29.0"
	b.sourceFile = "requirements.txt"
	return b
}

// Clone creates a deep copy of the DeclaredDependencyBuilder.
func (b *DeclaredDependencyBuilder) Clone() testkit.Builder {
	return &DeclaredDependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		specifier:   b.specifier,
		sourceFile:  b.sourceFile,
	}
}
