package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tmorland/wayfare/internal/cli/formatter"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the demo journey (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Journeys.SeedDemo(context.Background())
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderJourney(view, app.Plain))
			return nil
		},
	}
}
