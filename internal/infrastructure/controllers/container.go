package controllers

import (
	"github.com/depup-io/depup/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewScanController); err != nil {
		return err
	}
	if err := container.Provide(NewUpgradeController); err != nil {
		return err
	}
	if err := container.Provide(NewReportController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	scanController *ScanController,
	upgradeController *UpgradeController,
	reportController *ReportController,
) *[]entities.Controller {
	return &[]entities.Controller{
		scanController,
		upgradeController,
		reportController,
	}
}
