package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hafprodutora/editcostV3/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Auth     service.AuthService
	Settings service.SettingsService
	Projects service.ProjectService
	Timer    service.TimerService
	Reports  service.ReportService

	// IsInteractive reports whether stdin is a real terminal. Interactive
	// surfaces (onboarding form, watch view) are gated on it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "editcost" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "editcost",
		Short: "Track time and billable cost on video-editing projects",
	}

	root.AddCommand(
		newSignupCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newInitCmd(app),
		newSettingsCmd(app),
		newProjectCmd(app),
		newTimerCmd(app),
		newDeliverableCmd(app),
		newCostCmd(app),
		newTemplateCmd(app),
		newReportCmd(app),
	)

	return root
}

// requireUser resolves the signed-in account or fails with a hint.
func requireUser(ctx context.Context, app *App) (string, error) {
	email, err := app.Auth.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("%w (run 'editcost login' first)", err)
	}
	return email, nil
}

// resolveProjectID accepts a display number, a full ID, or an ID prefix.
func resolveProjectID(ctx context.Context, app *App, email, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx, email)
	if err != nil {
		return "", err
	}

	// 1. Display number match
	if n, err := strconv.Atoi(input); err == nil {
		for _, p := range projects {
			if p.Number == n {
				return p.ID, nil
			}
		}
	}

	// 2. Exact ID match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 3. ID prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveDeliverableID accepts a full deliverable ID, an ID prefix, or an
// exact name.
func resolveDeliverableID(ctx context.Context, app *App, email, projectID, input string) (string, error) {
	p, err := app.Projects.Get(ctx, email, projectID)
	if err != nil {
		return "", err
	}

	for _, d := range p.Deliverables {
		if d.ID == input {
			return d.ID, nil
		}
	}
	for _, d := range p.Deliverables {
		if strings.EqualFold(d.Name, input) {
			return d.ID, nil
		}
	}

	var matches []string
	for _, d := range p.Deliverables {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("deliverable not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("deliverable %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveExtraCostID accepts a full extra-cost ID, an ID prefix, or an
// exact name.
func resolveExtraCostID(ctx context.Context, app *App, email, projectID, input string) (string, error) {
	p, err := app.Projects.Get(ctx, email, projectID)
	if err != nil {
		return "", err
	}

	for _, c := range p.ExtraCosts {
		if c.ID == input {
			return c.ID, nil
		}
	}
	for _, c := range p.ExtraCosts {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range p.ExtraCosts {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("extra cost not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("extra cost %q is ambiguous (%d matches)", input, len(matches))
	}
}
