package entities

import "github.com/spf13/cobra"

// ControllerBind describes how a controller is attached to the CLI.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entrypoint wired into the root command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
