package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSignupCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a local account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Signup(context.Background(), email, password); err != nil {
				return err
			}
			fmt.Println("Account created. Run 'editcost login' to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Auth.Login(ctx, email, password); err != nil {
				return err
			}

			settings, err := app.Settings.Get(ctx, email)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s\n", email)
			if !settings.Initialized {
				fmt.Println("Run 'editcost init' to set your hourly rate and timer defaults.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := requireUser(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Println(email)
			return nil
		},
	}
}
