package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hafprodutora/editcostV3/internal/cli/formatter"
	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/engine"
)

// newTimerWatchCmd runs the live countdown view. Time only accrues while
// this command is running: the engine loop ticks once per second in the
// background and the view re-reads state for display.
func newTimerWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <project>",
		Short: "Watch the countdown and accrue time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			email, err := requireUser(ctx, app)
			if err != nil {
				return err
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch needs an interactive terminal")
			}
			id, err := resolveProjectID(ctx, app, email, args[0])
			if err != nil {
				return err
			}

			loop := engine.NewLoop(engine.AdvancerFunc(func(ctx context.Context) (bool, error) {
				return app.Timer.Advance(ctx, email)
			}))
			defer loop.Stop()

			m := newWatchModel(app, loop, email, id)
			if m.err == nil && m.project != nil && m.project.IsTimerRunning {
				loop.Kick()
			}

			p := tea.NewProgram(m)
			_, err = p.Run()
			return err
		},
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

// watchRefreshMsg drives the display refresh. It carries no data; the
// model re-reads state on every beat.
type watchRefreshMsg time.Time

func watchRefresh() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchRefreshMsg(t)
	})
}

// ── keys ─────────────────────────────────────────────────────────────────────

type watchKeyMap struct {
	Start key.Binding
	Pause key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func newWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ── model ────────────────────────────────────────────────────────────────────

type watchModel struct {
	app       *App
	loop      *engine.Loop
	email     string
	projectID string

	project  *domain.Project
	settings domain.Settings
	bar      progress.Model
	keys     watchKeyMap
	err      error
	quitting bool
}

func newWatchModel(app *App, loop *engine.Loop, email, projectID string) watchModel {
	m := watchModel{
		app:       app,
		loop:      loop,
		email:     email,
		projectID: projectID,
		bar:       progress.New(progress.WithSolidFill(string(formatter.ColorHeader))),
		keys:      newWatchKeyMap(),
	}
	m.bar.Width = 32
	m.bar.ShowPercentage = false
	m.reload()
	return m
}

// reload re-reads the project and settings. The engine loop is the only
// writer; the view is a read-only observer.
func (m *watchModel) reload() {
	ctx := context.Background()
	settings, err := m.app.Settings.Get(ctx, m.email)
	if err != nil {
		m.err = err
		return
	}
	project, err := m.app.Projects.Get(ctx, m.email, m.projectID)
	if err != nil {
		m.err = err
		return
	}
	m.settings = settings
	m.project = project
	m.err = nil
}

func (m watchModel) Init() tea.Cmd {
	return watchRefresh()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchRefreshMsg:
		m.reload()
		return m, watchRefresh()

	case tea.KeyMsg:
		ctx := context.Background()
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.loop.Stop()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Start):
			if err := m.app.Timer.Start(ctx, m.email, m.projectID); err != nil {
				m.err = err
				return m, nil
			}
			m.loop.Kick()
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Pause):
			if err := m.app.Timer.Pause(ctx, m.email, m.projectID); err != nil {
				m.err = err
				return m, nil
			}
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			if err := m.app.Timer.Reset(ctx, m.email, m.projectID, m.settings.PomodoroDuration); err != nil {
				m.err = err
				return m, nil
			}
			m.reload()
			return m, nil
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.project == nil {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}

	p := m.project
	total := m.settings.PomodoroDuration * 60
	remaining := p.RemainingSeconds(m.settings.PomodoroDuration)

	frac := 0.0
	if total > 0 {
		frac = float64(remaining) / float64(total)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleBold.Render(fmt.Sprintf("#%d %s", p.Number, p.Name)))
	b.WriteString("  " + formatter.StatusLabel(p.Status) + "\n\n")

	countdown := formatter.FormatCountdown(remaining)
	if p.IsTimerRunning {
		b.WriteString("  " + formatter.StyleHeader.Render(countdown))
	} else {
		b.WriteString("  " + formatter.Dim(countdown))
	}
	b.WriteString("  " + m.bar.ViewAs(frac) + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		formatter.Dim("time   "), formatter.FormatTime(p.TimeSpentSeconds)))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		formatter.Dim("cost   "), formatter.FormatCurrency(p.TotalCost, m.settings.Currency)))

	if p.IsComplex() {
		if d := p.FindDeliverable(p.ActiveDeliverableID); d != nil {
			b.WriteString(fmt.Sprintf("  %s %s (%s)\n",
				formatter.Dim("working"), d.Name, formatter.FormatTime(d.TrackedSeconds)))
		} else {
			b.WriteString("  " + formatter.Dim("no deliverable selected") + "\n")
		}
	}

	b.WriteString("\n  ")
	hints := []key.Binding{m.keys.Start, m.keys.Pause, m.keys.Reset, m.keys.Quit}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, formatter.Dim(h.Help().Key+": "+h.Help().Desc))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n")

	return b.String()
}
