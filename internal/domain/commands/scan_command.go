package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/depup-io/depup/internal/domain/entities"
	"github.com/depup-io/depup/internal/domain/repositories"
)

// Scan is the interface for the scan command.
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScanOptions) (*ScanResult, error)
}

// ScanOptions holds runtime options for a scan.
type ScanOptions struct {
	ProjectRoot string
	Latest      bool // Also resolve latest versions from the index
	Environment bool // Scan the installed environment instead of files
}

// ScanResult pairs the discovered dependencies with their report rows.
type ScanResult struct {
	Dependencies []entities.DeclaredDependency
	Rows         []entities.ReportRow
}

// ScanCommand discovers declared dependencies and optionally resolves their
// latest published versions.
type ScanCommand struct {
	parser    repositories.ParserRepository
	installer repositories.InstallerRepository
	resolver  *VersionResolver
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(
	parser repositories.ParserRepository,
	installer repositories.InstallerRepository,
	resolver *VersionResolver,
) *ScanCommand {
	return &ScanCommand{
		parser:    parser,
		installer: installer,
		resolver:  resolver,
	}
}

// Execute runs the scan. With opts.Environment set, dependencies come from
// the installed environment; otherwise from the project's dependency files.
func (it *ScanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ScanOptions,
) (*ScanResult, error) {
	declared, err := it.discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found %d declared dependencies", len(declared))

	var resolved []entities.ResolvedVersion
	if opts.Latest {
		resolved, err = it.resolver.Resolve(ctx, settings, declared)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve latest versions: %w", err)
		}
	}

	return &ScanResult{
		Dependencies: declared,
		Rows:         entities.BuildReportRows(declared, resolved),
	}, nil
}

func (it *ScanCommand) discover(
	ctx context.Context,
	opts ScanOptions,
) ([]entities.DeclaredDependency, error) {
	if opts.Environment {
		installed, err := it.installer.ListInstalled(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list installed packages: %w", err)
		}
		return installed, nil
	}

	declared, err := it.parser.ParseAll(opts.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dependency files: %w", err)
	}
	return declared, nil
}
