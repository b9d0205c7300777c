// Package report renders a validated plan into the documents the wizard
// leaves behind: a Markdown PRD and a phased roadmap in JSON and YAML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// Phase names in roadmap order.
const (
	PhaseBuild  = "Build"
	PhasePolish = "Polish"
	PhaseLaunch = "Launch"
)

const launchWeeks = 1

// Roadmap is the week-by-week plan derived from feature priorities.
type Roadmap struct {
	Project            string   `json:"project" yaml:"project"`
	Goal               string   `json:"goal,omitempty" yaml:"goal,omitempty"`
	TimelineWeeks      int      `json:"timeline_weeks" yaml:"timeline_weeks"`
	PlannedWeeks       int      `json:"planned_weeks" yaml:"planned_weeks"`
	UtilizationPercent *float64 `json:"utilization_percent" yaml:"utilization_percent"`
	Feasible           bool     `json:"feasible" yaml:"feasible"`
	ReadinessScore     int      `json:"readiness_score" yaml:"readiness_score"`
	ShouldProceed      bool     `json:"should_proceed" yaml:"should_proceed"`
	Phases             []Phase  `json:"phases" yaml:"phases"`
	Backlog            []Item   `json:"backlog" yaml:"backlog"`
}

// Phase is a contiguous block of weeks. StartWeek is 1-based.
type Phase struct {
	Name      string   `json:"name" yaml:"name"`
	StartWeek int      `json:"start_week" yaml:"start_week"`
	Weeks     int      `json:"weeks" yaml:"weeks"`
	Items     []Item   `json:"items,omitempty" yaml:"items,omitempty"`
	Tasks     []string `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// EndWeek is the last week of the phase, or StartWeek-1 for an empty phase.
func (p Phase) EndWeek() int {
	return p.StartWeek + p.Weeks - 1
}

// Item is one prioritised feature.
type Item struct {
	Feature   string                 `json:"feature" yaml:"feature"`
	Priority  domain.Priority        `json:"priority" yaml:"priority"`
	Score     float64                `json:"complexity_score" yaml:"complexity_score"`
	Level     domain.ComplexityLevel `json:"complexity_level" yaml:"complexity_level"`
	Weeks     int                    `json:"weeks" yaml:"weeks"`
	Reasoning string                 `json:"reasoning" yaml:"reasoning"`
}

func newItem(pf analysis.PrioritizedFeature) Item {
	return Item{
		Feature:   pf.Feature,
		Priority:  pf.Priority,
		Score:     pf.Complexity.Score,
		Level:     pf.Complexity.Level,
		Weeks:     pf.Complexity.EstimatedWeeks,
		Reasoning: pf.Reasoning,
	}
}

// BuildRoadmap lays must-haves into Build, should-haves into Polish and ends
// with a fixed one-week Launch. Nice-to-haves and deferred features go to
// the backlog. Phase weeks accumulate from each feature's estimate.
func BuildRoadmap(dc domain.DerivedContext, plan analysis.PlanReport) Roadmap {
	r := Roadmap{
		Project:            dc.ProjectName,
		Goal:               dc.ValueProposition,
		TimelineWeeks:      dc.TimelineWeeks,
		UtilizationPercent: analysis.Finite(plan.Capacity.UtilizationPercent),
		Feasible:           plan.Capacity.Feasible,
		ReadinessScore:     plan.Readiness.Score,
		ShouldProceed:      plan.ShouldProceed,
		Backlog:            []Item{},
	}

	build := Phase{Name: PhaseBuild}
	polish := Phase{Name: PhasePolish}
	for _, pf := range plan.Priorities {
		switch pf.Priority {
		case domain.PriorityMustHave:
			build.Items = append(build.Items, newItem(pf))
			build.Weeks += pf.Complexity.EstimatedWeeks
		case domain.PriorityShouldHave:
			polish.Items = append(polish.Items, newItem(pf))
			polish.Weeks += pf.Complexity.EstimatedWeeks
		default:
			r.Backlog = append(r.Backlog, newItem(pf))
		}
	}

	launch := Phase{Name: PhaseLaunch, Weeks: launchWeeks, Tasks: launchTasks(dc)}

	week := 1
	for _, p := range []*Phase{&build, &polish, &launch} {
		p.StartWeek = week
		week += p.Weeks
	}
	r.Phases = []Phase{build, polish, launch}
	r.PlannedWeeks = week - 1
	return r
}

func launchTasks(dc domain.DerivedContext) []string {
	tasks := []string{"Deploy to production"}
	if dc.LaunchPlan != "" {
		tasks = append(tasks, "Announce: "+dc.LaunchPlan)
	} else {
		tasks = append(tasks, "Announce to your first users")
	}
	if dc.TargetAudience != "" {
		tasks = append(tasks, "Collect feedback from "+dc.TargetAudience)
	} else {
		tasks = append(tasks, "Collect feedback")
	}
	return tasks
}

// RoadmapJSON encodes r as indented JSON.
func RoadmapJSON(r Roadmap) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding roadmap json: %w", err)
	}
	return append(data, '\n'), nil
}

// RoadmapYAML encodes r as YAML.
func RoadmapYAML(r Roadmap) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encoding roadmap yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding roadmap yaml: %w", err)
	}
	return buf.Bytes(), nil
}
