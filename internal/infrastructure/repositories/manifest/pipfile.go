package manifest

import (
	"fmt"
	"os"
	"strings"

	tomlv1 "github.com/pelletier/go-toml"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/depup-io/depup/internal/domain/entities"
	domainRepos "github.com/depup-io/depup/internal/domain/repositories"
)

const pipfileFileName = "Pipfile"

type pipfileFile struct {
	Packages    map[string]any `toml:"packages"`
	DevPackages map[string]any `toml:"dev-packages"`
}

// parsePipfile extracts declared dependencies from the [packages] and
// [dev-packages] sections of a Pipfile. Table values (git refs, path deps)
// are skipped.
func parsePipfile(path, sourceFile string) ([]entities.DeclaredDependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file pipfileFile
	if err = tomlv2.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var deps []entities.DeclaredDependency
	for _, section := range []map[string]any{file.Packages, file.DevPackages} {
		for name, value := range section {
			spec, ok := value.(string)
			if !ok {
				continue
			}
			if spec == "*" {
				spec = ""
			}
			deps = append(deps, entities.DeclaredDependency{
				Name:       name,
				Specifier:  spec,
				SourceFile: sourceFile,
			})
		}
	}
	return deps, nil
}

// PipfileRewriter rewrites versions in the [packages] and [dev-packages]
// sections of a Pipfile.
type PipfileRewriter struct{}

// NewPipfileRewriter creates a new Pipfile rewriter.
func NewPipfileRewriter() *PipfileRewriter {
	return &PipfileRewriter{}
}

// FileName returns the file this rewriter handles.
func (it *PipfileRewriter) FileName() string {
	return pipfileFileName
}

// Rewrite replaces the version literal for pkg, keeping whatever operator
// the constraint already carries. Wildcard and table constraints are left
// untouched and reported.
func (it *PipfileRewriter) Rewrite(path, pkg, version string) (domainRepos.RewriteResult, error) {
	var result domainRepos.RewriteResult

	tree, err := tomlv1.LoadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, section := range []string{"packages", "dev-packages"} {
		table, ok := tree.Get(section).(*tomlv1.Tree)
		if !ok {
			continue
		}
		for _, name := range table.Keys() {
			if !sameName(name, pkg) {
				continue
			}
			spec, isString := table.Get(name).(string)
			if !isString {
				result.Notes = append(result.Notes,
					fmt.Sprintf("%s uses a table constraint in [%s], left untouched", pkg, section))
				continue
			}
			if strings.TrimSpace(spec) == "*" {
				result.Notes = append(result.Notes,
					fmt.Sprintf("%s uses a wildcard version, left untouched", pkg))
				continue
			}
			table.Set(name, rewriteVersionLiteral(spec, version))
			result.Changed = true
		}
	}

	if !result.Changed {
		return result, nil
	}

	serialized, err := tree.ToTomlString()
	if err != nil {
		return result, fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err = backupFile(path); err != nil {
		return result, err
	}
	if err = writeFileAtomic(path, []byte(serialized)); err != nil {
		return result, err
	}
	return result, nil
}
