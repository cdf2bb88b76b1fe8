package cli

import (
	"github.com/spf13/cobra"
	"github.com/tmorland/wayfare/internal/config"
	"github.com/tmorland/wayfare/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Journeys service.JourneyService
	Stages   service.StageService
	Steps    service.StepService

	Config config.Config

	// Plain disables color and styling, set when stdout is not a terminal.
	Plain bool
}

// NewRootCmd creates the top-level "wayfare" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "wayfare",
		Short: "Track journeys, stages and steps with derived completion",
	}

	root.PersistentFlags().BoolVar(&app.Plain, "plain", app.Plain, "Disable colored output")

	root.AddCommand(
		newJourneyCmd(app),
		newStageCmd(app),
		newStepCmd(app),
		newSeedCmd(app),
		newServeCmd(app),
	)

	return root
}
