package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hafprodutora/editcostV3/internal/cli/formatter"
)

func newTimerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Control the project timer",
	}

	cmd.AddCommand(
		newTimerStartCmd(app),
		newTimerPauseCmd(app),
		newTimerResetCmd(app),
		newTimerDurationCmd(app),
		newTimerStatusCmd(app),
		newTimerWatchCmd(app),
	)

	return cmd
}

func newTimerStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <project>",
		Short: "Start the timer (stops any other running project)",
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

			if err := app.Timer.Start(ctx, email, id); err != nil {
				return err
			}
			fmt.Println("Timer started. Run 'editcost timer watch' to accrue time.")
			return nil
		},
	}
}

func newTimerPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause <project>",
		Short: "Pause the timer",
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

			if err := app.Timer.Pause(ctx, email, id); err != nil {
				return err
			}
			fmt.Println("Timer paused.")
			return nil
		},
	}
}

func newTimerResetCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "reset <project>",
		Short: "Stop the timer and reseed the countdown",
		Long: "Reset stops the timer and reseeds the session countdown. " +
			"Accrued time and cost are untouched.",
		Args: cobra.ExactArgs(1),
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

			sessionMinutes := minutes
			if !cmd.Flags().Changed("minutes") {
				settings, err := app.Settings.Get(ctx, email)
				if err != nil {
					return err
				}
				sessionMinutes = settings.PomodoroDuration
			}

			if err := app.Timer.Reset(ctx, email, id, sessionMinutes); err != nil {
				return err
			}
			fmt.Printf("Countdown reset to %s.\n", formatter.FormatCountdown(sessionMinutes*60))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 25, "Session length in minutes")
	return cmd
}

func newTimerDurationCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "duration <project>",
		Short: "Change the session countdown (timer must be paused)",
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

			if err := app.Timer.SetSessionDuration(ctx, email, id, minutes); err != nil {
				return err
			}
			fmt.Printf("Countdown set to %s.\n", formatter.FormatCountdown(minutes*60))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 25, "Session length in minutes")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newTimerStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which project is running",
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
			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}

			for _, p := range projects {
				if !p.IsTimerRunning {
					continue
				}
				fmt.Printf("%s #%d %s — %s left, %s accrued\n",
					formatter.StyleRed.Render("●"), p.Number, p.Name,
					formatter.FormatCountdown(p.RemainingSeconds(settings.PomodoroDuration)),
					formatter.FormatCurrency(p.TotalCost, settings.Currency))
				return nil
			}
			fmt.Println("No timer running.")
			return nil
		},
	}
}
