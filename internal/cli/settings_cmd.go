package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hafprodutora/editcostV3/internal/cli/formatter"
	"github.com/hafprodutora/editcostV3/internal/domain"
)

func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// newInitCmd runs the onboarding form: hourly rate, session and break
// lengths, currency. Saving marks the account initialized.
func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up hourly rate and timer defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("init needs an interactive terminal (use 'editcost settings set' instead)")
			}

			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}

			rateStr := strconv.FormatFloat(settings.HourlyRate, 'f', -1, 64)
			pomodoro := settings.PomodoroDuration
			breakTime := settings.BreakTime
			currency := settings.Currency

			pomodoroOpts := make([]huh.Option[int], 0, len(domain.PomodoroOptions))
			for _, m := range domain.PomodoroOptions {
				pomodoroOpts = append(pomodoroOpts, huh.NewOption(fmt.Sprintf("%d min", m), m))
			}
			breakOpts := make([]huh.Option[int], 0, len(domain.BreakOptions))
			for _, m := range domain.BreakOptions {
				breakOpts = append(breakOpts, huh.NewOption(fmt.Sprintf("%d min", m), m))
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Hourly rate").
						Placeholder("50").
						Value(&rateStr).
						Validate(validatePositiveFloat),
					huh.NewSelect[int]().
						Title("Focus session length").
						Options(pomodoroOpts...).
						Value(&pomodoro),
					huh.NewSelect[int]().
						Title("Break length").
						Options(breakOpts...).
						Value(&breakTime),
					huh.NewSelect[string]().
						Title("Currency").
						Options(
							huh.NewOption("Brazilian real (R$)", "BRL"),
							huh.NewOption("US dollar ($)", "USD"),
							huh.NewOption("Euro (€)", "EUR"),
						).
						Value(&currency),
				),
			).WithTheme(editcostHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			rate, err := strconv.ParseFloat(rateStr, 64)
			if err != nil {
				return fmt.Errorf("invalid hourly rate %q: %w", rateStr, err)
			}

			settings.HourlyRate = rate
			settings.PomodoroDuration = pomodoro
			settings.BreakTime = breakTime
			settings.Currency = currency
			settings.Initialized = true

			if err := app.Settings.Save(ctx, email, settings); err != nil {
				return err
			}
			fmt.Println("Settings saved. New projects will snapshot this rate.")
			return nil
		},
	}
}

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
	}
	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
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

			fmt.Printf("hourly rate: %s\n", formatter.FormatCurrency(settings.HourlyRate, settings.Currency))
			fmt.Printf("session:     %d min\n", settings.PomodoroDuration)
			fmt.Printf("break:       %d min\n", settings.BreakTime)
			fmt.Printf("currency:    %s\n", settings.Currency)
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var rate float64
	var pomodoro, breakTime int
	var currency string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual settings",
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

			if cmd.Flags().Changed("rate") {
				settings.HourlyRate = rate
			}
			if cmd.Flags().Changed("session") {
				settings.PomodoroDuration = pomodoro
			}
			if cmd.Flags().Changed("break") {
				settings.BreakTime = breakTime
			}
			if cmd.Flags().Changed("currency") {
				settings.Currency = currency
			}
			settings.Initialized = true

			if err := app.Settings.Save(ctx, email, settings); err != nil {
				return err
			}
			fmt.Println("Settings saved.")
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate")
	cmd.Flags().IntVar(&pomodoro, "session", 0, "Focus session length in minutes")
	cmd.Flags().IntVar(&breakTime, "break", 0, "Break length in minutes")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code (BRL, USD, EUR)")

	return cmd
}
