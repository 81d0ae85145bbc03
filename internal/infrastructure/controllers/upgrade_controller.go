package controllers

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/depup-io/depup/internal/domain/commands"
	"github.com/depup-io/depup/internal/domain/entities"
)

// UpgradeController handles the "upgrade" subcommand.
type UpgradeController struct {
	command commands.Upgrade
}

// NewUpgradeController creates a new UpgradeController.
func NewUpgradeController(command commands.Upgrade) *UpgradeController {
	return &UpgradeController{command: command}
}

// GetBind returns the Cobra command metadata for the upgrade controller.
func (it *UpgradeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "upgrade [path | package...]",
		Short: "Upgrade outdated dependencies and rewrite their manifests",
		Long: `Upgrade outdated Python dependencies.

Each upgrade installs the new version through pip first and rewrites
the declaring file only after the install succeeds. The original file
is backed up next to it before the first change. Without arguments
every outdated dependency in the current directory is upgraded; pass
a directory to upgrade a different project, or package names to
restrict the upgrade to those packages.`,
	}
}

// Execute plans the upgrades, asks for confirmation, and applies them.
func (it *UpgradeController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	onlyPatch, _ := cmd.Flags().GetBool("only-patch")
	onlyMinor, _ := cmd.Flags().GetBool("only-minor")
	onlyMajor, _ := cmd.Flags().GetBool("only-major")

	root, packages := splitArgs(args)

	plan, err := it.command.Plan(ctx, settings, commands.UpgradeOptions{
		ProjectRoot: root,
		Packages:    packages,
		OnlyPatch:   onlyPatch,
		OnlyMinor:   onlyMinor,
		OnlyMajor:   onlyMajor,
	})
	if err != nil {
		logger.Errorf("Upgrade planning failed: %v", err)
		return
	}

	if len(plan.Intents) == 0 {
		fmt.Println("Everything is up to date.")
		return
	}

	printPlan(plan.Intents)

	if !dryRun && !yes && !confirm() {
		fmt.Println("Aborted.")
		return
	}

	outcomes := it.command.Apply(ctx, plan, dryRun)
	printOutcomes(outcomes)
}

// AddFlags adds the upgrade-specific flags to the given Cobra command.
func (it *UpgradeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("yes", false, "Apply the plan without asking for confirmation")
	cmd.Flags().Bool("only-patch", false, "Only apply patch updates")
	cmd.Flags().Bool("only-minor", false, "Only apply minor updates")
	cmd.Flags().Bool("only-major", false, "Only apply major updates")
}

// splitArgs decides whether the first argument is a project directory or a
// package name. An existing directory wins; everything else is a package.
func splitArgs(args []string) (string, []string) {
	root := "."
	packages := args

	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			root = args[0]
			packages = args[1:]
		}
	}
	return root, packages
}

func confirm() bool {
	fmt.Print("Proceed? [y/N] ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
