package repositories

// RewriteResult reports what a rewrite attempt did to a file.
type RewriteResult struct {
	Changed bool     // True when at least one entry was updated
	Notes   []string // Human-readable notes about skipped entries
}

// RewriterRepository abstracts in-place version rewriting for one
// dependency file format. Implementations back up the original file before
// the first modification and preserve all unrelated content byte for byte.
type RewriterRepository interface {
	// FileName returns the base name this rewriter handles
	// (e.g. "requirements.txt").
	FileName() string

	// Rewrite pins pkg to version inside the file at path. Matching is
	// case-insensitive on the package name. Entries the format cannot
	// safely rewrite are left untouched and reported in the notes.
	Rewrite(path, pkg, version string) (RewriteResult, error)
}
