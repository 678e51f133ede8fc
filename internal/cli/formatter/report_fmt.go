package formatter

import (
	"fmt"
	"strings"

	"github.com/hafprodutora/editcostV3/internal/service"
)

// FormatMonthlySummary renders the monthly dashboard: summary cards plus
// the filtered project table.
func FormatMonthlySummary(sum *service.MonthlySummary, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d\n\n", StyleHeader.Render(sum.Month.String()), sum.Year)
	fmt.Fprintf(&b, "%s %s\n", Dim("total time"), Bold(FormatTime(sum.TotalSeconds)))
	fmt.Fprintf(&b, "%s %s\n", Dim("total cost"), StyleGreen.Render(FormatCurrency(sum.TotalCost, currency)))
	fmt.Fprintf(&b, "%s %d\n", Dim("in editing"), sum.InProgress)
	fmt.Fprintf(&b, "%s %d\n", Dim("completed "), sum.Completed)

	if len(sum.Projects) == 0 {
		b.WriteString("\n" + Dim("No projects started this month.") + "\n")
		return RenderBox("Monthly Report", b.String())
	}

	b.WriteString("\n")
	headers := []string{"#", "NAME", "STATUS", "TIME", "COST"}
	rows := make([][]string, 0, len(sum.Projects))
	for _, p := range sum.Projects {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Number),
			Bold(p.Name),
			StatusLabel(p.Status),
			FormatTime(p.TimeSpentSeconds),
			FormatCurrency(p.TotalCost, currency),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Monthly Report", b.String())
}

// FormatProjectReport renders the cost breakdown and profit for one
// project, with the per-deliverable time share for complex ones.
func FormatProjectReport(r *service.ProjectReport, currency string) string {
	p := r.Project
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", Bold(p.Name), StatusLabel(p.Status))
	fmt.Fprintf(&b, "%s %s\n", Dim("time spent  "), FormatTime(p.TimeSpentSeconds))
	fmt.Fprintf(&b, "%s %s\n", Dim("time cost   "), FormatCurrency(r.TimeCost, currency))
	fmt.Fprintf(&b, "%s %s\n", Dim("extra costs "), FormatCurrency(r.ExtraCostTotal, currency))
	fmt.Fprintf(&b, "%s %s\n", Dim("total cost  "), StyleGreen.Render(FormatCurrency(p.TotalCost, currency)))
	fmt.Fprintf(&b, "%s %s\n", Dim("fixed price "), FormatCurrency(p.FixedPrice, currency))

	profit := StyleGreen.Render(FormatCurrency(r.Profit, currency))
	if r.Profit < 0 {
		profit = StyleRed.Render(FormatCurrency(r.Profit, currency))
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("profit      "), profit)

	if p.CompletedAt != nil {
		fmt.Fprintf(&b, "%s %s\n", Dim("completed   "), HumanDate(*p.CompletedAt))
	}

	if p.IsComplex() && len(p.Deliverables) > 0 {
		b.WriteString("\n" + StyleHeader.Render("TIME BY DELIVERABLE") + "\n")
		for _, d := range p.Deliverables {
			fmt.Fprintf(&b, "  %s  %s  %s\n",
				Bold(d.Name), FormatTime(d.TrackedSeconds), DeliverableLabel(d.Status))
		}
	}

	return RenderBox("Report", b.String())
}
