package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/depup-io/depup/internal/domain/commands"
	"github.com/depup-io/depup/internal/domain/entities"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command commands.Scan
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan) *ScanController {
	return &ScanController{command: command}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan [path]",
		Short: "List declared dependencies and available updates",
		Long: `Scan a project directory for declared Python dependencies.

Reads requirements.txt, pyproject.toml, Pipfile, poetry.lock, and
Pipfile.lock. With --latest, each dependency is checked against PyPI
and classified as a patch, minor, or major update. With --env, the
installed environment is scanned instead of the project files.`,
	}
}

// Execute runs the scan.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	latest, _ := cmd.Flags().GetBool("latest")
	environment, _ := cmd.Flags().GetBool("env")
	format, _ := cmd.Flags().GetString("output")

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	result, err := it.command.Execute(ctx, settings, commands.ScanOptions{
		ProjectRoot: root,
		Latest:      latest,
		Environment: environment,
	})
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return
	}

	if err = printRows(result.Rows, format); err != nil {
		logger.Errorf("Failed to render report: %v", err)
	}
}

// AddFlags adds the scan-specific flags to the given Cobra command.
func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("latest", false, "Resolve the latest version of each dependency from PyPI")
	cmd.Flags().Bool("env", false, "Scan the installed environment instead of project files")
	cmd.Flags().String("output", outputTable, "Output format: table, json, or markdown")
}
