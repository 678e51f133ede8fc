package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hafprodutora/editcostV3/internal/cli/formatter"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summaries of time and cost",
	}
	cmd.AddCommand(newReportMonthCmd(app), newReportProjectCmd(app))
	return cmd
}

func newReportMonthCmd(app *App) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Summarize projects started in a calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			now := time.Now()
			month, year := now.Month(), now.Year()
			if monthFlag != "" {
				parsed, err := time.Parse("2006-01", monthFlag)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM): %w", monthFlag, err)
				}
				month, year = parsed.Month(), parsed.Year()
			}

			summary, err := app.Reports.Monthly(ctx, email, month, year)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatMonthlySummary(summary, settings.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Month to report (YYYY-MM, defaults to current)")
	return cmd
}

func newReportProjectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "project <project>",
		Short: "Break down one project's cost and profit",
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

			report, err := app.Reports.Project(ctx, email, id)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectReport(report, settings.Currency))
			return nil
		},
	}
}
