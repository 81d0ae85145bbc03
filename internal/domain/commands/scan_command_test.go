//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depup-io/depup/internal/domain/commands"
	"github.com/depup-io/depup/internal/domain/entities"
	"github.com/depup-io/depup/test/domain/entitybuilders"
	"github.com/depup-io/depup/test/infrastructure/repositorydoubles"
)

func newScanFixture(
	parser *repositorydoubles.StubParserRepository,
	installer *repositorydoubles.SpyInstallerRepository,
	index *repositorydoubles.StubIndexRepository,
) *commands.ScanCommand {
	return commands.NewScanCommand(parser, installer, commands.NewVersionResolver(index))
}

func TestScanCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report declared dependencies without resolving", func(t *testing.T) {
		t.Parallel()

		// given
		parser := &repositorydoubles.StubParserRepository{
			Dependencies: []entities.DeclaredDependency{
				entitybuilders.NewDeclaredDependencyBuilder().
					WithName("requests").WithSpecifier("==2.29.0").BuildDeclaredDependency(),
			},
		}
		index := &repositorydoubles.StubIndexRepository{}
		command := newScanFixture(parser, &repositorydoubles.SpyInstallerRepository{}, index)

		// when
		result, err := command.Execute(context.Background(), entities.DefaultSettings(),
			commands.ScanOptions{ProjectRoot: "."})

		// then
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "requests", result.Rows[0].Name)
		assert.Empty(t, result.Rows[0].Latest)
		assert.Empty(t, index.LookupCalls)
	})

	t.Run("should resolve latest versions when requested", func(t *testing.T) {
		t.Parallel()

		// given
		parser := &repositorydoubles.StubParserRepository{
			Dependencies: []entities.DeclaredDependency{
				entitybuilders.NewDeclaredDependencyBuilder().
					WithName("requests").WithSpecifier("==2.29.0").BuildDeclaredDependency(),
			},
		}
		index := &repositorydoubles.StubIndexRepository{
			Versions: map[string]string{"requests": "2.30.0"},
		}
		command := newScanFixture(parser, &repositorydoubles.SpyInstallerRepository{}, index)

		// when
		result, err := command.Execute(context.Background(), entities.DefaultSettings(),
			commands.ScanOptions{ProjectRoot: ".", Latest: true})

		// then
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "2.30.0", result.Rows[0].Latest)
		assert.Equal(t, entities.UpdateMinor, result.Rows[0].UpdateType)
	})

	t.Run("should scan the installed environment instead of files", func(t *testing.T) {
		t.Parallel()

		// given
		parser := &repositorydoubles.StubParserRepository{}
		installer := &repositorydoubles.SpyInstallerRepository{
			Installed: []entities.DeclaredDependency{
				{Name: "requests", Specifier: "==2.29.0"},
			},
		}
		command := newScanFixture(parser, installer, &repositorydoubles.StubIndexRepository{})

		// when
		result, err := command.Execute(context.Background(), entities.DefaultSettings(),
			commands.ScanOptions{Environment: true})

		// then
		require.NoError(t, err)
		require.Len(t, result.Dependencies, 1)
		assert.Empty(t, result.Dependencies[0].SourceFile)
		assert.Empty(t, parser.ParsedRoots)
	})

	t.Run("should fail when the environment scan fails", func(t *testing.T) {
		t.Parallel()

		// given
		installer := &repositorydoubles.SpyInstallerRepository{ListErr: errors.New("pip missing")}
		command := newScanFixture(&repositorydoubles.StubParserRepository{}, installer,
			&repositorydoubles.StubIndexRepository{})

		// when
		result, err := command.Execute(context.Background(), entities.DefaultSettings(),
			commands.ScanOptions{Environment: true})

		// then
		require.Error(t, err)
		assert.Nil(t, result)
	})
}
