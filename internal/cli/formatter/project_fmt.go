package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/hafprodutora/editcostV3/internal/domain"
)

// FormatProjectList renders the dashboard table: one row per project,
// most-recent-first, with live time and cost columns.
func FormatProjectList(projects []*domain.Project, currency string) string {
	headers := []string{"#", "NAME", "CLIENT", "TYPE", "STATUS", "TIME", "COST"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		name := Bold(p.Name)
		if p.IsTimerRunning {
			name = StyleRed.Render("● ") + name
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Number),
			name,
			p.Client,
			Dim(string(p.Type)),
			StatusLabel(p.Status),
			FormatTime(p.TimeSpentSeconds),
			StyleGreen.Render(FormatCurrency(p.TotalCost, currency)),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Projects", table)
}

// FormatProjectDetail renders the full card for a single project,
// including the deliverable and extra-cost breakdown for complex ones.
func FormatProjectDetail(p *domain.Project, settings domain.Settings) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(p.Name), StatusLabel(p.Status))
	fmt.Fprintf(&b, "%s %s\n", Dim("client:"), p.Client)
	fmt.Fprintf(&b, "%s %s %s\n", Dim("id:"), TruncID(p.ID), Dim(DaysSinceStart(p.StartDate, time.Now())))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s   %s\n", Dim("countdown"), Bold(FormatCountdown(p.RemainingSeconds(settings.PomodoroDuration))))
	fmt.Fprintf(&b, "%s %s\n", Dim("time spent"), Bold(FormatTime(p.TimeSpentSeconds)))
	fmt.Fprintf(&b, "%s %s\n", Dim("total cost"), StyleGreen.Render(FormatCurrency(p.TotalCost, settings.Currency)))
	fmt.Fprintf(&b, "%s %s %s\n", Dim("rate"), FormatCurrency(p.HourlyRate, settings.Currency), Dim("(locked at creation)"))
	if p.FixedPrice > 0 {
		fmt.Fprintf(&b, "%s %s  %s %s\n",
			Dim("price"), FormatCurrency(p.FixedPrice, settings.Currency),
			Dim("profit"), FormatCurrency(p.Profit(), settings.Currency))
	}
	if p.Notes != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("notes"), p.Notes)
	}

	if p.IsComplex() {
		b.WriteString("\n" + StyleHeader.Render("DELIVERABLES") + "\n")
		if len(p.Deliverables) == 0 {
			b.WriteString(Dim("none") + "\n")
		}
		for _, d := range p.Deliverables {
			marker := "  "
			if d.ID == p.ActiveDeliverableID {
				marker = StyleYellow.Render("▶ ")
			}
			fmt.Fprintf(&b, "%s%s  %s  %s  %s\n",
				marker, TruncID(d.ID), Bold(d.Name),
				FormatTime(d.TrackedSeconds), DeliverableLabel(d.Status))
		}

		if len(p.ExtraCosts) > 0 {
			b.WriteString("\n" + StyleHeader.Render("EXTRA COSTS") + "\n")
			for _, c := range p.ExtraCosts {
				fmt.Fprintf(&b, "  %s  %s  %s\n",
					TruncID(c.ID), c.Name,
					FormatCurrency(c.Value, settings.Currency))
			}
		}
	}

	return RenderBox("Project", b.String())
}
