//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/depup-io/depup/internal/domain/entities"
	"github.com/depup-io/depup/internal/domain/repositories"
)

// StubParserRepository implements repositories.ParserRepository with a
// fixed dependency list.
type StubParserRepository struct {
	Dependencies []entities.DeclaredDependency
	ParseErr     error
	ParsedRoots  []string
}

var _ repositories.ParserRepository = (*StubParserRepository)(nil)

func (s *StubParserRepository) ParseAll(root string) ([]entities.DeclaredDependency, error) {
	s.ParsedRoots = append(s.ParsedRoots, root)
	return s.Dependencies, s.ParseErr
}
