//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"
	"sync"

	"github.com/depup-io/depup/internal/domain/repositories"
)

// StubIndexRepository implements repositories.IndexRepository from a fixed
// name-to-version map. Lookups are safe for concurrent use.
type StubIndexRepository struct {
	// Versions maps lowercase package names to their latest version.
	Versions map[string]string
	// Errors maps lowercase package names to a lookup error.
	Errors map[string]error

	mu          sync.Mutex
	LookupCalls []string
	IndexURLs   []string
}

var _ repositories.IndexRepository = (*StubIndexRepository)(nil)

func (s *StubIndexRepository) Name() string { return "stub" }

func (s *StubIndexRepository) LatestVersion(_ context.Context, indexURL, pkg string) (string, error) {
	key := strings.ToLower(pkg)

	s.mu.Lock()
	s.LookupCalls = append(s.LookupCalls, key)
	s.IndexURLs = append(s.IndexURLs, indexURL)
	s.mu.Unlock()

	if err, ok := s.Errors[key]; ok {
		return "", err
	}
	return s.Versions[key], nil
}
