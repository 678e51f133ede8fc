package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDeliverableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliverable",
		Short: "Manage deliverables on complex projects",
	}
	cmd.AddCommand(
		newDeliverableAddCmd(app),
		newDeliverableSelectCmd(app),
		newDeliverableToggleCmd(app),
	)
	return cmd
}

func newDeliverableAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <project>",
		Short: "Add a deliverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			id, err := resolveProjectID(ctx, app, email, args[0])
			if err != nil {
				return err
			}

			d, err := app.Timer.AddDeliverable(ctx, email, id, name)
			if err != nil {
				return err
			}
			fmt.Printf("Added deliverable %s (%s)\n", d.Name, d.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Deliverable name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDeliverableSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <project> <deliverable>",
		Short: "Select the deliverable to track time against",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, email, args[0])
			if err != nil {
				return err
			}
			deliverableID, err := resolveDeliverableID(ctx, app, email, projectID, args[1])
			if err != nil {
				return err
			}

			if err := app.Timer.SelectDeliverable(ctx, email, projectID, deliverableID); err != nil {
				return err
			}
			fmt.Println("Deliverable selected.")
			return nil
		},
	}
}

func newDeliverableToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <project> <deliverable>",
		Short: "Toggle a deliverable between done and pending",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, email, args[0])
			if err != nil {
				return err
			}
			deliverableID, err := resolveDeliverableID(ctx, app, email, projectID, args[1])
			if err != nil {
				return err
			}

			if err := app.Timer.ToggleDeliverable(ctx, email, projectID, deliverableID); err != nil {
				return err
			}
			fmt.Println("Deliverable toggled.")
			return nil
		},
	}
}
