package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hafprodutora/editcostV3/internal/cli/formatter"
)

func newCostCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Manage extra costs (licenses, stock footage, gear rental)",
	}
	cmd.AddCommand(newCostAddCmd(app), newCostRemoveCmd(app))
	return cmd
}

func newCostAddCmd(app *App) *cobra.Command {
	var name string
	var value float64

	cmd := &cobra.Command{
		Use:   "add <project>",
		Short: "Add an extra cost to a project",
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

			c, err := app.Timer.AddExtraCost(ctx, email, id, name, value)
			if err != nil {
				return err
			}

			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s — %s (%s)\n",
				c.Name, formatter.FormatCurrency(c.Value, settings.Currency), c.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Cost description")
	cmd.Flags().Float64Var(&value, "value", 0, "Cost amount")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newCostRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project> <cost-id>",
		Short: "Remove an extra cost",
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
			costID, err := resolveExtraCostID(ctx, app, email, projectID, args[1])
			if err != nil {
				return err
			}

			if err := app.Timer.RemoveExtraCost(ctx, email, projectID, costID); err != nil {
				return err
			}
			fmt.Println("Extra cost removed.")
			return nil
		},
	}
}
