package repositories

import (
	domainRepos "github.com/depup-io/depup/internal/domain/repositories"
)

// RewriterRegistry manages all registered file rewriter implementations,
// keyed by the base file name they handle.
type RewriterRegistry struct {
	rewriters map[string]domainRepos.RewriterRepository
}

// NewRewriterRegistry creates an empty rewriter registry.
func NewRewriterRegistry() *RewriterRegistry {
	return &RewriterRegistry{
		rewriters: make(map[string]domainRepos.RewriterRepository),
	}
}

// Register adds a rewriter under its file name.
func (r *RewriterRegistry) Register(w domainRepos.RewriterRepository) {
	r.rewriters[w.FileName()] = w
}

// Get returns the rewriter for the given file name.
func (r *RewriterRegistry) Get(fileName string) (domainRepos.RewriterRepository, bool) {
	w, ok := r.rewriters[fileName]
	return w, ok
}

// Names returns the list of registered file names.
func (r *RewriterRegistry) Names() []string {
	names := make([]string, 0, len(r.rewriters))
	for name := range r.rewriters {
		names = append(names, name)
	}
	return names
}
