//go:build unit

package controllers //nolint:testpackage // exercises unexported argument handling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	t.Run("should default to the current directory", func(t *testing.T) {
		t.Parallel()

		// when
		root, packages := splitArgs(nil)

		// then
		assert.Equal(t, ".", root)
		assert.Empty(t, packages)
	})

	t.Run("should treat an existing directory as the project root", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		root, packages := splitArgs([]string{dir, "requests"})

		// then
		assert.Equal(t, dir, root)
		assert.Equal(t, []string{"requests"}, packages)
	})

	t.Run("should treat non-directories as package names", func(t *testing.T) {
		t.Parallel()

		// when
		root, packages := splitArgs([]string{"requests", "flask"})

		// then
		assert.Equal(t, ".", root)
		assert.Equal(t, []string{"requests", "flask"}, packages)
	})
}
