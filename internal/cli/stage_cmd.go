package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Manage stages within a journey",
	}

	cmd.AddCommand(
		newStageAddCmd(app),
		newStageRemoveCmd(app),
	)

	return cmd
}

func newStageAddCmd(app *App) *cobra.Command {
	var journeyID, name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a stage to a journey",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveJourneyID(ctx, app, journeyID)
			if err != nil {
				return err
			}

			s, err := app.Stages.Add(ctx, id, name)
			if err != nil {
				return err
			}

			fmt.Printf("Added stage %s (%s)\n", s.Name, s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&journeyID, "journey", "", "Journey ID (or unambiguous prefix)")
	cmd.Flags().StringVar(&name, "name", "", "Stage name")
	_ = cmd.MarkFlagRequired("journey")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStageRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <stage-id>",
		Short: "Delete a stage and its steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Stages.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed stage %s\n", args[0])
			return nil
		},
	}
}
