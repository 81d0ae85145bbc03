package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/depup-io/depup/internal/domain/entities"
	"github.com/depup-io/depup/internal/domain/repositories"
	infraRepos "github.com/depup-io/depup/internal/infrastructure/repositories"
)

// Upgrade is the interface for the upgrade command.
type Upgrade interface {
	Plan(ctx context.Context, settings *entities.Settings, opts UpgradeOptions) (*UpgradePlan, error)
	Apply(ctx context.Context, plan *UpgradePlan, dryRun bool) []entities.UpgradeOutcome
}

// UpgradeOptions holds runtime options for an upgrade.
type UpgradeOptions struct {
	ProjectRoot string
	Packages    []string // Empty means every upgradable package
	OnlyPatch   bool
	OnlyMinor   bool
	OnlyMajor   bool
}

// UpgradePlan is the set of upgrade intents produced by Plan and consumed
// verbatim by Apply.
type UpgradePlan struct {
	ProjectRoot string
	Intents     []entities.UpgradeIntent
}

// UpgradeCommand plans dependency upgrades and applies them by installing
// the new version first and rewriting the declaring file only afterwards,
// so a failed install never leaves a manifest pointing at an absent version.
type UpgradeCommand struct {
	parser    repositories.ParserRepository
	installer repositories.InstallerRepository
	resolver  *VersionResolver
	rewriters *infraRepos.RewriterRegistry
}

// NewUpgradeCommand creates a new UpgradeCommand.
func NewUpgradeCommand(
	parser repositories.ParserRepository,
	installer repositories.InstallerRepository,
	resolver *VersionResolver,
	rewriters *infraRepos.RewriterRegistry,
) *UpgradeCommand {
	return &UpgradeCommand{
		parser:    parser,
		installer: installer,
		resolver:  resolver,
		rewriters: rewriters,
	}
}

// Plan discovers declared dependencies, resolves their latest versions, and
// returns one intent per declared occurrence that matches the filters.
func (it *UpgradeCommand) Plan(
	ctx context.Context,
	settings *entities.Settings,
	opts UpgradeOptions,
) (*UpgradePlan, error) {
	declared, err := it.parser.ParseAll(opts.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dependency files: %w", err)
	}

	resolved, err := it.resolver.Resolve(ctx, settings, declared)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve latest versions: %w", err)
	}

	allowed := entities.AllowedUpdateTypes(opts.OnlyPatch, opts.OnlyMinor, opts.OnlyMajor)
	intents := entities.PlanUpgrades(declared, resolved, opts.Packages, allowed, settings.DefaultManifest)
	logger.Infof("Planned %d upgrades across %d dependencies", len(intents), len(declared))

	return &UpgradePlan{ProjectRoot: opts.ProjectRoot, Intents: intents}, nil
}

// Apply executes every intent in the plan. Each intent yields exactly one
// outcome; a failure on one intent never aborts the rest.
func (it *UpgradeCommand) Apply(
	ctx context.Context,
	plan *UpgradePlan,
	dryRun bool,
) []entities.UpgradeOutcome {
	// The same package pinned in several files is installed only once.
	installed := make(map[string]bool, len(plan.Intents))

	outcomes := make([]entities.UpgradeOutcome, 0, len(plan.Intents))
	for _, intent := range plan.Intents {
		outcomes = append(outcomes, it.applyOne(ctx, plan.ProjectRoot, intent, installed, dryRun))
	}
	return outcomes
}

func (it *UpgradeCommand) applyOne(
	ctx context.Context,
	root string,
	intent entities.UpgradeIntent,
	installed map[string]bool,
	dryRun bool,
) entities.UpgradeOutcome {
	outcome := entities.UpgradeOutcome{
		Name:      intent.Name,
		FromSpec:  intent.CurrentSpec,
		ToVersion: intent.TargetVersion,
		DryRun:    dryRun,
	}

	if dryRun {
		logger.Infof("[dry-run] Would upgrade %s %s -> %s in %s",
			intent.Name, intent.CurrentSpec, intent.TargetVersion, intent.SourceFile)
		outcome.Success = true
		return outcome
	}

	// An intent nothing can rewrite fails before touching the environment,
	// so lockfile entries never trigger an install they cannot record.
	rewriter, ok := it.rewriters.Get(filepath.Base(intent.SourceFile))
	if !ok {
		outcome.Err = fmt.Sprintf("no rewriter for file %q", intent.SourceFile)
		return outcome
	}

	installKey := fmt.Sprintf("%s==%s", intent.Name, intent.TargetVersion)
	if !installed[installKey] {
		if err := it.installer.Install(ctx, intent.Name, intent.TargetVersion); err != nil {
			outcome.Err = err.Error()
			return outcome
		}
		installed[installKey] = true
	}

	result, err := rewriter.Rewrite(filepath.Join(root, intent.SourceFile), intent.Name, intent.TargetVersion)
	if err != nil {
		outcome.Err = err.Error()
		return outcome
	}
	for _, note := range result.Notes {
		logger.Warnf("%s: %s", intent.SourceFile, note)
	}

	outcome.Success = true
	return outcome
}
