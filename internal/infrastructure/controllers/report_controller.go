package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/depup-io/depup/internal/domain/commands"
	"github.com/depup-io/depup/internal/domain/entities"
)

// ReportController handles the "report" subcommand.
type ReportController struct {
	command commands.Scan
}

// NewReportController creates a new ReportController.
func NewReportController(command commands.Scan) *ReportController {
	return &ReportController{command: command}
}

// GetBind returns the Cobra command metadata for the report controller.
func (it *ReportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "report [path]",
		Short: "Write a Markdown dependency report",
		Long: `Scan a project, resolve the latest version of every dependency,
and write the result as a Markdown table to a file.`,
	}
}

// Execute runs the scan and writes the Markdown report.
func (it *ReportController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	file, _ := cmd.Flags().GetString("file")
	title, _ := cmd.Flags().GetString("title")

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	result, err := it.command.Execute(ctx, settings, commands.ScanOptions{
		ProjectRoot: root,
		Latest:      true,
	})
	if err != nil {
		logger.Errorf("Report failed: %v", err)
		return
	}

	if err = writeMarkdownReport(file, title, result.Rows); err != nil {
		logger.Errorf("Failed to write report: %v", err)
		return
	}
	logger.Infof("Wrote report for %d dependencies to %s", len(result.Rows), file)
}

// AddFlags adds the report-specific flags to the given Cobra command.
func (it *ReportController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "dependency-report.md", "Report file to write")
	cmd.Flags().String("title", "Dependency Report", "Report title")
}
