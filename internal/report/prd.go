package report

import (
	"embed"
	"fmt"
	"math"
	"strings"
	"text/template"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var prdTemplate = template.Must(
	template.New("prd.md.tmpl").Funcs(template.FuncMap{
		"percent": formatPercent,
		"weeks":   formatWeeks,
	}).ParseFS(templateFS, "templates/prd.md.tmpl"),
)

type prdData struct {
	Context domain.DerivedContext
	Plan    analysis.PlanReport
	Roadmap Roadmap
}

// RenderPRD renders the plan as a Markdown product requirements document.
func RenderPRD(dc domain.DerivedContext, plan analysis.PlanReport) (string, error) {
	var b strings.Builder
	data := prdData{Context: dc, Plan: plan, Roadmap: BuildRoadmap(dc, plan)}
	if err := prdTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering prd: %w", err)
	}
	return b.String(), nil
}

func formatPercent(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", v)
}

func formatWeeks(p Phase) string {
	switch {
	case p.Weeks <= 0:
		return "no weeks"
	case p.Weeks == 1:
		return fmt.Sprintf("week %d", p.StartWeek)
	default:
		return fmt.Sprintf("weeks %d-%d", p.StartWeek, p.EndWeek())
	}
}
