package controllers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/depup-io/depup/internal/domain/entities"
)

const (
	outputTable    = "table"
	outputJSON     = "json"
	outputMarkdown = "markdown"
)

// printRows renders report rows in the requested output format.
func printRows(rows []entities.ReportRow, format string) error {
	switch format {
	case outputJSON:
		return printJSON(rows)
	case outputMarkdown:
		fmt.Print(markdownReport(rows))
		return nil
	case outputTable:
		printTable(rows)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, or markdown)", format)
	}
}

func printTable(rows []entities.ReportRow) {
	nameW := len("Package")
	declaredW := len("Declared")
	latestW := len("Latest")
	sourceW := len("Source")

	for _, row := range rows {
		if len(row.Name) > nameW {
			nameW = len(row.Name)
		}
		if len(row.Declared) > declaredW {
			declaredW = len(row.Declared)
		}
		if len(row.Latest) > latestW {
			latestW = len(row.Latest)
		}
		if len(row.Source) > sourceW {
			sourceW = len(row.Source)
		}
	}

	line := fmt.Sprintf("%%-%ds  %%-%ds  %%-%ds  %%-%ds  %%s\n", nameW, declaredW, latestW, sourceW)
	fmt.Printf(line, "Package", "Declared", "Latest", "Source", "Status")
	fmt.Printf(line,
		strings.Repeat("-", nameW),
		strings.Repeat("-", declaredW),
		strings.Repeat("-", latestW),
		strings.Repeat("-", sourceW),
		"------",
	)
	for _, row := range rows {
		latest := row.Latest
		if latest == "" {
			latest = "N/A"
		}
		fmt.Printf(line, row.Name, row.Declared, latest, row.Source, statusLabel(row.UpdateType))
	}
}

func printJSON(rows []entities.ReportRow) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func markdownReport(rows []entities.ReportRow) string {
	var b strings.Builder
	b.WriteString("| Package | Declared | Latest | Source | Status |\n")
	b.WriteString("|---------|----------|--------|--------|--------|\n")
	for _, row := range rows {
		latest := row.Latest
		if latest == "" {
			latest = "N/A"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			row.Name, row.Declared, latest, row.Source, statusLabel(row.UpdateType))
	}
	return b.String()
}

func statusLabel(updateType entities.UpdateType) string {
	switch updateType {
	case entities.UpdateMajor:
		return "🔴 Major"
	case entities.UpdateMinor:
		return "🟡 Minor"
	case entities.UpdatePatch:
		return "🟢 Patch"
	default:
		return "✅ Up to date"
	}
}

// printPlan renders the pending upgrade intents before confirmation.
func printPlan(intents []entities.UpgradeIntent) {
	fmt.Printf("Planned upgrades (%d):\n", len(intents))
	for _, intent := range intents {
		from := intent.CurrentSpec
		if from == "" {
			from = "(unpinned)"
		}
		fmt.Printf("  %s: %s -> %s (%s)\n", intent.Name, from, intent.TargetVersion, intent.SourceFile)
	}
}

// printOutcomes renders the per-package results and a final summary line.
func printOutcomes(outcomes []entities.UpgradeOutcome) {
	succeeded := 0
	for _, outcome := range outcomes {
		switch {
		case outcome.DryRun:
			fmt.Printf("  [dry-run] %s %s -> %s\n", outcome.Name, outcome.FromSpec, outcome.ToVersion)
			succeeded++
		case outcome.Success:
			fmt.Printf("  ✅ %s %s -> %s\n", outcome.Name, outcome.FromSpec, outcome.ToVersion)
			succeeded++
		default:
			fmt.Printf("  ❌ %s: %s\n", outcome.Name, outcome.Err)
		}
	}
	fmt.Printf("Done: %d succeeded, %d failed.\n", succeeded, len(outcomes)-succeeded)
}

// writeMarkdownReport writes the Markdown report to a file.
func writeMarkdownReport(path, title string, rows []entities.ReportRow) error {
	content := fmt.Sprintf("# %s\n\n%s", title, markdownReport(rows))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
