package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// FormatComplexity renders one complexity row per feature.
func FormatComplexity(items []analysis.FeatureComplexity) string {
	if len(items) == 0 {
		return Dim("No features to score.") + "\n"
	}

	var b strings.Builder
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		c := it.Complexity
		rows = append(rows, []string{
			it.Feature,
			fmt.Sprintf("%.0f", c.Score),
			ComplexityColor(c.Level).Render(string(c.Level)),
			FormatWeeks(float64(c.EstimatedWeeks)),
		})
	}
	b.WriteString(RenderTable([]string{"FEATURE", "SCORE", "LEVEL", "ESTIMATE"}, rows))

	for _, it := range items {
		for _, w := range it.Complexity.Warnings {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("▲"), w))
		}
	}
	return b.String()
}

// FormatCapacity renders a capacity verdict.
func FormatCapacity(c analysis.CapacityAnalysis) string {
	var b strings.Builder
	b.WriteString(RenderFields([][2]string{
		{"Feasible", Check(c.Feasible)},
		{"Estimated", FormatWeeks(c.EstimatedWeeks)},
		{"Available", FormatWeeks(c.AvailableWeeks)},
		{"Utilization", FormatPercent(c.UtilizationPercent)},
	}))
	b.WriteString(Bullets(c.Recommendations, StyleFg))
	return b.String()
}

// FormatTimeline renders the adjusted timeline breakdown and its risk.
func FormatTimeline(t analysis.TimelineCheck) string {
	var b strings.Builder
	b.WriteString(RenderFields([][2]string{
		{"Features", FormatWeeks(t.FeatureWeeks)},
		{"Planning", FormatWeeks(t.Planning)},
		{"Testing", FormatWeeks(t.Testing)},
		{"Deployment", FormatWeeks(t.Deployment)},
		{"Buffer", FormatWeeks(t.Buffer)},
		{"Realistic", Bold(FormatWeeks(t.AdjustedWeeks))},
		{"Target", FormatWeeks(t.TargetWeeks)},
		{"Risk", RiskIndicator(t.Risk)},
	}))
	if !t.Sane {
		b.WriteString(StyleRed.Render("Target is less than 60% of a realistic timeline."))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPriorities renders the prioritised feature table.
func FormatPriorities(items []analysis.PrioritizedFeature) string {
	if len(items) == 0 {
		return Dim("No features to prioritise.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Feature,
			PriorityBadge(it.Priority),
			fmt.Sprintf("%.0f", it.Complexity.Score),
			Dim(it.Reasoning),
		})
	}
	return RenderTable([]string{"FEATURE", "PRIORITY", "SCORE", "WHY"}, rows)
}

// FormatStack renders over-engineering findings and the innovation budget.
func FormatStack(o analysis.OverengineeringReport, in analysis.InnovationBudget) string {
	var b strings.Builder
	if !o.Detected {
		b.WriteString(StyleGreen.Render("✔ No over-engineering detected"))
		b.WriteString("\n")
	}
	for i, issue := range o.Issues {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleRed.Render("✖"), issue))
		if i < len(o.Suggestions) {
			b.WriteString(fmt.Sprintf("    %s\n", Dim("→ "+o.Suggestions[i])))
		}
	}

	b.WriteString("\n")
	budget := fmt.Sprintf("%d of %d innovation tokens", in.Spent, in.Budget)
	if in.Exceeded {
		budget = StyleRed.Render(budget + " (over budget)")
	} else {
		budget = StyleGreen.Render(budget)
	}
	b.WriteString(RenderFields([][2]string{
		{"Innovation", budget},
		{"Boring", OrDash(strings.Join(in.Boring, ", "))},
		{"Novel", OrDash(strings.Join(in.Novel, ", "))},
	}))
	return b.String()
}

// FormatReadiness renders the readiness score with its notes.
func FormatReadiness(r analysis.MVPReadiness) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Readiness"), RenderScore(r.Score, 100, 20)))
	for _, s := range r.Strengths {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("+"), s))
	}
	for _, w := range r.Weaknesses {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("-"), w))
	}
	for _, bl := range r.Blockers {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("✖"), bl))
	}
	return b.String()
}

// FormatScope renders the scope-protection verdict.
func FormatScope(s analysis.ScopeCheck) string {
	if s.Valid {
		return fmt.Sprintf("%s Scope fits (%s per feature)\n", Check(true), FormatWeeks(s.WeeksPerFeature))
	}
	return fmt.Sprintf("%s %s\n", Check(false), s.Reason)
}

// FormatConsistency renders cross-answer contradictions and notes.
func FormatConsistency(c analysis.ConsistencyCheck) string {
	var b strings.Builder
	if c.IsConsistent {
		b.WriteString(fmt.Sprintf("%s Answers are consistent\n", Check(true)))
	}
	for _, is := range c.Issues {
		b.WriteString(fmt.Sprintf("%s %s\n", Check(false), is))
	}
	if len(c.AffectedQuestions) > 0 {
		b.WriteString(Dim("Revisit: " + strings.Join(c.AffectedQuestions, ", ")))
		b.WriteString("\n")
	}
	for _, n := range c.Notes {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleBlue.Render("●"), n))
	}
	return b.String()
}

// Verdict renders the proceed/rework line.
func Verdict(proceed bool) string {
	if proceed {
		return StyleGreen.Render("✔ Ready to build. Ship the must-haves first.")
	}
	return StyleRed.Render(fmt.Sprintf("✖ Not ready. Address the blockers and aim for a readiness of %d+.", analysis.ReadinessThreshold))
}

// PriorityCounts tallies features per tier in tier order.
func PriorityCounts(items []analysis.PrioritizedFeature) string {
	tiers := []domain.Priority{domain.PriorityMustHave, domain.PriorityShouldHave, domain.PriorityNiceToHave, domain.PriorityDefer}
	parts := make([]string, 0, len(tiers))
	for _, p := range tiers {
		if n := len(analysis.FilterByPriority(items, p)); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, p))
		}
	}
	if len(parts) == 0 {
		return Dim("none")
	}
	return strings.Join(parts, ", ")
}
