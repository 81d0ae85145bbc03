//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depup-io/depup/internal/domain/entities"
	"github.com/depup-io/depup/test/domain/entitybuilders"
)

func TestAllowedUpdateTypes(t *testing.T) {
	t.Parallel()

	t.Run("should allow everything with no filter", func(t *testing.T) {
		t.Parallel()

		// when
		allowed := entities.AllowedUpdateTypes(false, false, false)

		// then
		assert.True(t, allowed[entities.UpdatePatch])
		assert.True(t, allowed[entities.UpdateMinor])
		assert.True(t, allowed[entities.UpdateMajor])
	})

	t.Run("should allow only the selected magnitudes", func(t *testing.T) {
		t.Parallel()

		// when
		allowed := entities.AllowedUpdateTypes(true, true, false)

		// then
		assert.True(t, allowed[entities.UpdatePatch])
		assert.True(t, allowed[entities.UpdateMinor])
		assert.False(t, allowed[entities.UpdateMajor])
	})
}

func TestPlanUpgrades(t *testing.T) {
	t.Parallel()

	t.Run("should plan one intent per declared occurrence", func(t *testing.T) {
		t.Parallel()

		// given
		declared := []entities.DeclaredDependency{
			entitybuilders.NewDeclaredDependencyBuilder().
				WithName("requests").WithSourceFile("requirements.txt").BuildDeclaredDependency(),
			entitybuilders.NewDeclaredDependencyBuilder().
				WithName("requests").WithSourceFile("pyproject.toml").BuildDeclaredDependency(),
		}
		resolved := []entities.ResolvedVersion{
			entitybuilders.NewResolvedVersionBuilder().
				WithName("requests").WithLatest("2.30.0").BuildResolvedVersion(),
		}

		// when
		intents := entities.PlanUpgrades(declared, resolved, nil,
			entities.AllowedUpdateTypes(false, false, false), "requirements.txt")

		// then
		require.Len(t, intents, 2)
		assert.Equal(t, "requirements.txt", intents[0].SourceFile)
		assert.Equal(t, "pyproject.toml", intents[1].SourceFile)
		assert.Equal(t, "2.30.0", intents[0].TargetVersion)
	})

	t.Run("should skip dependencies without an available update", func(t *testing.T) {
		t.Parallel()

		// given
		declared := []entities.DeclaredDependency{
			entitybuilders.NewDeclaredDependencyBuilder().WithName("flask").BuildDeclaredDependency(),
		}
		resolved := []entities.ResolvedVersion{
			entitybuilders.NewResolvedVersionBuilder().
				WithName("flask").WithUpdateType(entities.UpdateNone).BuildResolvedVersion(),
		}

		// when
		intents := entities.PlanUpgrades(declared, resolved, nil,
			entities.AllowedUpdateTypes(false, false, false), "requirements.txt")

		// then
		assert.Empty(t, intents)
	})

	t.Run("should honor the name filter case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		declared := []entities.DeclaredDependency{
			entitybuilders.NewDeclaredDependencyBuilder().WithName("Requests").BuildDeclaredDependency(),
			entitybuilders.NewDeclaredDependencyBuilder().WithName("flask").BuildDeclaredDependency(),
		}
		resolved := []entities.ResolvedVersion{
			entitybuilders.NewResolvedVersionBuilder().WithName("Requests").BuildResolvedVersion(),
			entitybuilders.NewResolvedVersionBuilder().WithName("flask").BuildResolvedVersion(),
		}

		// when
		intents := entities.PlanUpgrades(declared, resolved, []string{"requests"},
			entities.AllowedUpdateTypes(false, false, false), "requirements.txt")

		// then
		require.Len(t, intents, 1)
		assert.Equal(t, "Requests", intents[0].Name)
	})

	t.Run("should honor the magnitude filter", func(t *testing.T) {
		t.Parallel()

		// given
		declared := []entities.DeclaredDependency{
			entitybuilders.NewDeclaredDependencyBuilder().WithName("requests").BuildDeclaredDependency(),
			entitybuilders.NewDeclaredDependencyBuilder().WithName("urllib").BuildDeclaredDependency(),
		}
		resolved := []entities.ResolvedVersion{
			entitybuilders.NewResolvedVersionBuilder().
				WithName("requests").WithUpdateType(entities.UpdateMinor).BuildResolvedVersion(),
			entitybuilders.NewResolvedVersionBuilder().
				WithName("urllib").WithUpdateType(entities.UpdateMajor).BuildResolvedVersion(),
		}

		// when
		intents := entities.PlanUpgrades(declared, resolved, nil,
			entities.AllowedUpdateTypes(false, false, true), "requirements.txt")

		// then
		require.Len(t, intents, 1)
		assert.Equal(t, "urllib", intents[0].Name)
	})

	t.Run("should fall back to the default manifest for environment entries", func(t *testing.T) {
		t.Parallel()

		// given
		declared := []entities.DeclaredDependency{
			entitybuilders.NewDeclaredDependencyBuilder().
				WithName("requests").WithSourceFile("").BuildDeclaredDependency(),
		}
		resolved := []entities.ResolvedVersion{
			entitybuilders.NewResolvedVersionBuilder().WithName("requests").BuildResolvedVersion(),
		}

		// when
		intents := entities.PlanUpgrades(declared, resolved, nil,
			entities.AllowedUpdateTypes(false, false, false), "requirements.txt")

		// then
		require.Len(t, intents, 1)
		assert.Equal(t, "requirements.txt", intents[0].SourceFile)
	})
}

func TestBuildReportRows(t *testing.T) {
	t.Parallel()

	t.Run("should keep the declared order and join by name", func(t *testing.T) {
		t.Parallel()

		// given
		declared := []entities.DeclaredDependency{
			entitybuilders.NewDeclaredDependencyBuilder().WithName("flask").BuildDeclaredDependency(),
			entitybuilders.NewDeclaredDependencyBuilder().WithName("Requests").BuildDeclaredDependency(),
		}
		resolved := []entities.ResolvedVersion{
			entitybuilders.NewResolvedVersionBuilder().
				WithName("requests").WithLatest("2.30.0").BuildResolvedVersion(),
		}

		// when
		rows := entities.BuildReportRows(declared, resolved)

		// then
		require.Len(t, rows, 2)
		assert.Equal(t, "flask", rows[0].Name)
		assert.Equal(t, entities.UpdateNone, rows[0].UpdateType)
		assert.Equal(t, "2.30.0", rows[1].Latest)
		assert.Equal(t, entities.UpdateMinor, rows[1].UpdateType)
	})
}
