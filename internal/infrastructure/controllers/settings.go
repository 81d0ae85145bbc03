package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/depup-io/depup/internal/domain/entities"
)

// loadSettings resolves the runtime settings for a command invocation:
// an explicit --config path wins, then the conventional config locations,
// then the built-in defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = entities.FindConfigFile()
	}
	if configPath == "" {
		return entities.DefaultSettings(), nil
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}
