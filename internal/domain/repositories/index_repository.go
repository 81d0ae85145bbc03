package repositories

import "context"

// IndexRepository abstracts a package index queried for latest versions.
type IndexRepository interface {
	// Name returns the index identifier (e.g. "pypi").
	Name() string

	// LatestVersion returns the latest published version of a package from
	// the index rooted at indexURL. An empty indexURL selects the default
	// public index. It returns an error for unknown packages and transport
	// failures.
	LatestVersion(ctx context.Context, indexURL, pkg string) (string, error)
}
