package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hafprodutora/editcostV3/internal/cli/formatter"
	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/service"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectCreateCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectConcludeCmd(app),
		newProjectDeleteCmd(app),
	)

	return cmd
}

func newProjectCreateCmd(app *App) *cobra.Command {
	var name, client, notes, projectType, start, templateID string
	var fixedPrice float64
	var deliverables []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			in := service.CreateProjectInput{
				Name:         name,
				Client:       client,
				Notes:        notes,
				Type:         domain.ProjectType(projectType),
				FixedPrice:   fixedPrice,
				TemplateID:   templateID,
				Deliverables: deliverables,
			}
			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				in.StartDate = startDate
			}

			p, err := app.Projects.Create(ctx, email, in)
			if err != nil {
				return err
			}

			fmt.Printf("Created project #%d %s (%s)\n", p.Number, p.Name, p.ID[:8])
			if p.IsComplex() && len(p.Deliverables) > 0 {
				fmt.Println("Select a deliverable before starting the timer:")
				for _, d := range p.Deliverables {
					fmt.Printf("  %s  %s\n", d.ID[:8], d.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&projectType, "type", "simple", "Project type: simple or complex")
	cmd.Flags().Float64Var(&fixedPrice, "price", 0, "Agreed fixed price (used only for profit)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&templateID, "template", "", "Template ID to seed from")
	cmd.Flags().StringSliceVar(&deliverables, "deliverable", nil, "Deliverable name (repeatable, complex projects)")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			projects, err := app.Projects.List(ctx, email)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects yet. Create one with 'editcost project create'.")
				return nil
			}

			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectList(projects, settings.Currency))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show one project",
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

			p, err := app.Projects.Get(ctx, email, id)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectDetail(p, settings))
			return nil
		},
	}
}

func newProjectConcludeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conclude <project>",
		Short: "Conclude a project and stamp its completion time",
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

			p, err := app.Projects.Conclude(ctx, email, id)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}
			fmt.Printf("Concluded #%d %s — final cost %s\n",
				p.Number, p.Name, formatter.FormatCurrency(p.TotalCost, settings.Currency))
			return nil
		},
	}
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <project>",
		Short: "Delete a project permanently",
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

			if !yes {
				return fmt.Errorf("deletion is irreversible; re-run with --yes to confirm")
			}
			if err := app.Projects.Delete(ctx, email, id); err != nil {
				return err
			}
			fmt.Println("Project deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}
