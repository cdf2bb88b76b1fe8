package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmorland/wayfare/internal/cli/formatter"
)

// resolveJourneyID accepts a full journey ID or an unambiguous prefix.
func resolveJourneyID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("journey ID is required")
	}

	journeys, err := app.Journeys.List(ctx)
	if err != nil {
		return "", err
	}

	for _, j := range journeys {
		if j.ID == input {
			return j.ID, nil
		}
	}

	var matches []string
	for _, j := range journeys {
		if strings.HasPrefix(j.ID, input) {
			matches = append(matches, j.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("journey not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("journey ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newJourneyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journey",
		Short: "Manage journeys",
	}

	cmd.AddCommand(
		newJourneyAddCmd(app),
		newJourneyListCmd(app),
		newJourneyShowCmd(app),
		newJourneyRemoveCmd(app),
	)

	return cmd
}

func newJourneyAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new journey",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := app.Journeys.Create(context.Background(), name)
			if err != nil {
				return err
			}

			fmt.Printf("Created journey %s (%s)\n", j.Name, j.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Journey name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newJourneyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journeys with their completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			journeys, err := app.Journeys.List(context.Background())
			if err != nil {
				return err
			}

			if len(journeys) == 0 {
				fmt.Println("No journeys found.")
				return nil
			}

			for _, j := range journeys {
				fmt.Printf("%s  %s  %s\n", j.ID, formatter.RenderProgress(j.Completion, 12, app.Plain), j.Name)
			}
			return nil
		},
	}
}

func newJourneyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <journey-id>",
		Short: "Show a journey's stages and steps as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveJourneyID(ctx, app, args[0])
			if err != nil {
				return err
			}

			view, err := app.Journeys.GetByID(ctx, id)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderJourney(view, app.Plain))
			return nil
		},
	}
}

func newJourneyRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <journey-id>",
		Short: "Delete a journey and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveJourneyID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Journeys.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Removed journey %s\n", id)
			return nil
		},
	}
}
