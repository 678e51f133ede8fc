package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hafprodutora/editcostV3/internal/cli/formatter"
	"github.com/hafprodutora/editcostV3/internal/domain"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage project templates",
	}
	cmd.AddCommand(
		newTemplateAddSimpleCmd(app),
		newTemplateAddComplexCmd(app),
		newTemplateListCmd(app),
		newTemplateRemoveCmd(app),
	)
	return cmd
}

func newTemplateAddSimpleCmd(app *App) *cobra.Command {
	var name string
	var price float64

	cmd := &cobra.Command{
		Use:   "add-simple",
		Short: "Add a simple project template",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			t, err := app.Settings.AddSimpleTemplate(ctx, email, name, price)
			if err != nil {
				return err
			}
			fmt.Printf("Added template %s (%s)\n", t.Name, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name")
	cmd.Flags().Float64Var(&price, "price", 0, "Default fixed price")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// parseExtraCostFlag parses "name=value" into an ExtraCost.
func parseExtraCostFlag(s string) (domain.ExtraCost, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return domain.ExtraCost{}, fmt.Errorf("extra cost %q must be name=value", s)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return domain.ExtraCost{}, fmt.Errorf("invalid extra cost value %q: %w", value, err)
	}
	return domain.ExtraCost{Name: name, Value: v}, nil
}

func newTemplateAddComplexCmd(app *App) *cobra.Command {
	var name string
	var price float64
	var deliverables, extras []string

	cmd := &cobra.Command{
		Use:   "add-complex",
		Short: "Add a complex project template with deliverables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			costs := make([]domain.ExtraCost, 0, len(extras))
			for _, e := range extras {
				c, err := parseExtraCostFlag(e)
				if err != nil {
					return err
				}
				costs = append(costs, c)
			}

			t, err := app.Settings.AddComplexTemplate(ctx, email, name, price, deliverables, costs)
			if err != nil {
				return err
			}
			fmt.Printf("Added template %s (%s), %d deliverables\n", t.Name, t.ID[:8], len(t.Deliverables))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name")
	cmd.Flags().Float64Var(&price, "price", 0, "Default fixed price")
	cmd.Flags().StringSliceVar(&deliverables, "deliverable", nil, "Deliverable name (repeatable)")
	cmd.Flags().StringSliceVar(&extras, "extra", nil, "Extra cost as name=value (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}

			if len(settings.SimpleTemplates) == 0 && len(settings.ComplexTemplates) == 0 {
				fmt.Println("No templates yet.")
				return nil
			}

			for _, t := range settings.SimpleTemplates {
				fmt.Printf("%s  %s  %s  %s\n",
					formatter.Dim(t.ID[:8]),
					formatter.StyleBlue.Render("simple "),
					t.Name,
					formatter.FormatCurrency(t.DefaultPrice, settings.Currency))
			}
			for _, t := range settings.ComplexTemplates {
				fmt.Printf("%s  %s  %s  %s  %s\n",
					formatter.Dim(t.ID[:8]),
					formatter.StylePurple.Render("complex"),
					t.Name,
					formatter.FormatCurrency(t.DefaultPrice, settings.Currency),
					formatter.Dim(fmt.Sprintf("%d deliverables", len(t.Deliverables))))
			}
			return nil
		},
	}
}

func newTemplateRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <template-id>",
		Short: "Remove a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			if err := app.Settings.RemoveTemplate(ctx, email, args[0]); err != nil {
				return err
			}
			fmt.Println("Template removed.")
			return nil
		},
	}
}
