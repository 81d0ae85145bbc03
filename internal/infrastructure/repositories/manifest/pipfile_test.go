//go:build unit

package manifest_test

import (
	"testing"

	tomlv1 "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depup-io/depup/internal/infrastructure/repositories/manifest"
)

const pipfileContent = `[[source]]
url = "https://pypi.org/simple"
verify_ssl = true
name = "pypi"

[packages]
requests = "==2.29.0"
flask = "*"

[dev-packages]
pytest = ">=7.0"

[packages.internal-lib]
path = "./libs/internal"
`

func TestPipfileParsing(t *testing.T) {
	t.Parallel()

	t.Run("should parse packages and dev-packages", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeFile(t, dir, "Pipfile", pipfileContent)

		// when
		deps, err := manifest.NewParserRepository().ParseAll(dir)

		// then
		require.NoError(t, err)
		byName := make(map[string]string, len(deps))
		for _, dep := range deps {
			byName[dep.Name] = dep.Specifier
			assert.Equal(t, "Pipfile", dep.SourceFile)
		}
		assert.Equal(t, "==2.29.0", byName["requests"])
		assert.Equal(t, "", byName["flask"])
		assert.Equal(t, ">=7.0", byName["pytest"])
		assert.NotContains(t, byName, "internal-lib")
	})
}

func TestPipfileRewrite(t *testing.T) {
	t.Parallel()

	t.Run("should pin a package entry", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := writeFile(t, dir, "Pipfile", pipfileContent)

		// when
		result, err := manifest.NewPipfileRewriter().Rewrite(path, "requests", "2.30.0")

		// then
		require.NoError(t, err)
		assert.True(t, result.Changed)

		tree, err := tomlv1.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "==2.30.0", tree.Get("packages.requests"))
		assert.Equal(t, ">=7.0", tree.Get("dev-packages.pytest"))
	})

	t.Run("should pin a dev package entry keeping its operator", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := writeFile(t, dir, "Pipfile", pipfileContent)

		// when
		result, err := manifest.NewPipfileRewriter().Rewrite(path, "pytest", "8.0.0")

		// then
		require.NoError(t, err)
		assert.True(t, result.Changed)

		tree, err := tomlv1.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, ">=8.0.0", tree.Get("dev-packages.pytest"))
	})

	t.Run("should leave wildcard entries untouched with a note", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := writeFile(t, dir, "Pipfile", pipfileContent)

		// when
		result, err := manifest.NewPipfileRewriter().Rewrite(path, "flask", "3.0.0")

		// then
		require.NoError(t, err)
		assert.False(t, result.Changed)
		require.Len(t, result.Notes, 1)
		assert.Contains(t, result.Notes[0], "wildcard")
	})

	t.Run("should skip path dependencies with a note", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := writeFile(t, dir, "Pipfile", pipfileContent)

		// when
		result, err := manifest.NewPipfileRewriter().Rewrite(path, "internal-lib", "1.0.0")

		// then
		require.NoError(t, err)
		assert.False(t, result.Changed)
		require.Len(t, result.Notes, 1)
		assert.Contains(t, result.Notes[0], "table constraint")
	})
}
