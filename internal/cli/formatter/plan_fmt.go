package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/report"
)

// FormatPlanReport renders every section of a validation pass.
func FormatPlanReport(dc domain.DerivedContext, r *analysis.PlanReport) string {
	var b strings.Builder

	section := func(title, body string) {
		b.WriteString(Header(title))
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString(RenderBox(domain.CoalesceStr(dc.ProjectName, "Untitled MVP"), FormatReadiness(r.Readiness)+"\n"+Verdict(r.ShouldProceed)))
	b.WriteString("\n\n")

	section("Features", FormatComplexity(r.Complexity))
	section("Priorities", FormatPriorities(r.Priorities)+Dim("Tiers: ")+PriorityCounts(r.Priorities)+"\n")
	section("Capacity", FormatCapacity(r.Capacity))
	section("Timeline", FormatTimeline(r.Timeline))
	section("Scope", FormatScope(r.Scope))
	section("Tech stack", FormatStack(r.Overengineering, r.Innovation))
	section("Consistency", FormatConsistency(r.Consistency))

	return b.String()
}

// FormatRoadmap renders the phased roadmap.
func FormatRoadmap(rm report.Roadmap) string {
	var b strings.Builder
	for _, p := range rm.Phases {
		weeks := "no weeks"
		switch {
		case p.Weeks == 1:
			weeks = fmt.Sprintf("week %d", p.StartWeek)
		case p.Weeks > 1:
			weeks = fmt.Sprintf("weeks %d-%d", p.StartWeek, p.EndWeek())
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Bold(p.Name), Dim("("+weeks+")")))
		for _, it := range p.Items {
			b.WriteString(fmt.Sprintf("  - %s %s\n", it.Feature, Dim(FormatWeeks(float64(it.Weeks)))))
		}
		for _, t := range p.Tasks {
			b.WriteString(fmt.Sprintf("  - %s\n", t))
		}
	}
	if len(rm.Backlog) > 0 {
		b.WriteString(Bold("Backlog"))
		b.WriteString("\n")
		for _, it := range rm.Backlog {
			b.WriteString(fmt.Sprintf("  - %s %s\n", it.Feature, PriorityBadge(it.Priority)))
		}
	}
	return b.String()
}

// FormatWritten lists the files a render produced.
func FormatWritten(paths []string) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Documents written"))
	b.WriteString("\n")
	for _, p := range paths {
		b.WriteString("  ")
		b.WriteString(Dim(p))
		b.WriteString("\n")
	}
	return b.String()
}
