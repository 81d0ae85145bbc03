//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/depup-io/depup/internal/domain/repositories"
)

// RewriteCall records a single invocation of Rewrite.
type RewriteCall struct {
	Path    string
	Package string
	Version string
}

// SpyRewriterRepository implements repositories.RewriterRepository as a
// configurable spy.
type SpyRewriterRepository struct {
	// --- identity ---
	HandledFileName string

	// --- Rewrite ---
	Result       repositories.RewriteResult
	RewriteErr   error
	RewriteCalls []RewriteCall
}

var _ repositories.RewriterRepository = (*SpyRewriterRepository)(nil)

func (s *SpyRewriterRepository) FileName() string { return s.HandledFileName }

func (s *SpyRewriterRepository) Rewrite(path, pkg, version string) (repositories.RewriteResult, error) {
	s.RewriteCalls = append(s.RewriteCalls, RewriteCall{Path: path, Package: pkg, Version: version})
	return s.Result, s.RewriteErr
}
