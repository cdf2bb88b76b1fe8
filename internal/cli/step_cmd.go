package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Manage steps within a stage",
	}

	cmd.AddCommand(
		newStepAddCmd(app),
		newStepStatusCmd(app),
		newStepRemoveCmd(app),
	)

	return cmd
}

func newStepAddCmd(app *App) *cobra.Command {
	var stageID, name, status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a step to a stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Steps.Add(context.Background(), stageID, name, status)
			if err != nil {
				return err
			}

			fmt.Printf("Added step %s (%s) [%s]\n", s.Name, s.ID, s.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&stageID, "stage", "", "Stage ID")
	cmd.Flags().StringVar(&name, "name", "", "Step name")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (NOT_STARTED, IN_PROGRESS, COMPLETED)")
	_ = cmd.MarkFlagRequired("stage")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStepStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <step-id> <status>",
		Short: "Set a step's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Steps.UpdateStatus(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Step %s is now %s\n", s.Name, s.Status)
			return nil
		},
	}
}

func newStepRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <step-id>",
		Short: "Delete a step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Steps.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed step %s\n", args[0])
			return nil
		},
	}
}
