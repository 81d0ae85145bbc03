package repositories

import "github.com/depup-io/depup/internal/domain/entities"

// ParserRepository discovers declared dependencies across the manifest and
// lockfile formats present in a project directory.
type ParserRepository interface {
	// ParseAll scans the project root for known dependency files and
	// returns every declared occurrence, in deterministic file order.
	// Missing files are skipped; unreadable ones produce an error.
	ParseAll(root string) ([]entities.DeclaredDependency, error)
}
