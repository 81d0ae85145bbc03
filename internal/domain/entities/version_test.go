//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depup-io/depup/internal/domain/entities"
)

func TestNormalizeSpecifier(t *testing.T) {
	t.Parallel()

	t.Run("should strip an exact pin operator", func(t *testing.T) {
		t.Parallel()

		// given
		spec := "==2.29.0"

		// when
		version := entities.NormalizeSpecifier(spec)

		// then
		assert.Equal(t, "2.29.0", version)
	})

	t.Run("should strip range and compatible operators", func(t *testing.T) {
		t.Parallel()

		// given
		specs := map[string]string{
			">=1.2.3":  "1.2.3",
			"<=1.2.3":  "1.2.3",
			"~=1.2.3":  "1.2.3",
			"!=1.2.3":  "1.2.3",
			"<2.0":     "2.0",
			">1.0":     "1.0",
			"^2.1.0":   "2.1.0",
			"~2.1.0":   "2.1.0",
			" == 1.0 ": "1.0",
		}

		for spec, want := range specs {
			// when
			version := entities.NormalizeSpecifier(spec)

			// then
			assert.Equal(t, want, version, "specifier %q", spec)
		}
	})

	t.Run("should treat a wildcard as unknown", func(t *testing.T) {
		t.Parallel()

		// when
		version := entities.NormalizeSpecifier("*")

		// then
		assert.Empty(t, version)
	})

	t.Run("should treat an empty specifier as unknown", func(t *testing.T) {
		t.Parallel()

		// when
		version := entities.NormalizeSpecifier("")

		// then
		assert.Empty(t, version)
	})

	t.Run("should be idempotent on an already-bare version", func(t *testing.T) {
		t.Parallel()

		// given
		once := entities.NormalizeSpecifier("==2.29.0")

		// when
		twice := entities.NormalizeSpecifier(once)

		// then
		assert.Equal(t, once, twice)
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("should classify a minor version bump", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("2.29.0", "2.30.0")

		// then
		assert.Equal(t, entities.UpdateMinor, updateType)
	})

	t.Run("should classify a patch version bump", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("1.5.2", "1.5.3")

		// then
		assert.Equal(t, entities.UpdatePatch, updateType)
	})

	t.Run("should classify a major version bump", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("1.26.0", "2.0.0")

		// then
		assert.Equal(t, entities.UpdateMajor, updateType)
	})

	t.Run("should classify equal versions as no update", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("2.30.0", "2.30.0")

		// then
		assert.Equal(t, entities.UpdateNone, updateType)
	})

	t.Run("should classify an older latest as no update", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("2.30.0", "2.29.0")

		// then
		assert.Equal(t, entities.UpdateNone, updateType)
	})

	t.Run("should classify an unknown declared version as no update", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("", "2.30.0")

		// then
		assert.Equal(t, entities.UpdateNone, updateType)
	})

	t.Run("should classify an unknown latest version as no update", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("2.29.0", "")

		// then
		assert.Equal(t, entities.UpdateNone, updateType)
	})

	t.Run("should classify unparsable versions as no update", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("not-a-version", "2.30.0")

		// then
		assert.Equal(t, entities.UpdateNone, updateType)
	})

	t.Run("should pad short versions before comparing", func(t *testing.T) {
		t.Parallel()

		// when
		updateType := entities.Classify("2", "2.1")

		// then
		assert.Equal(t, entities.UpdateMinor, updateType)
	})
}
