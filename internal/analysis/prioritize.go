package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

const (
	mustHaveBudgetShare   = 0.7
	shouldHaveBudgetShare = 0.9
	shouldHaveMaxScore    = 3
	niceToHaveMaxScore    = 5
	tooComplexScore       = 7
)

// PrioritizedFeature is one feature placed into a priority tier.
type PrioritizedFeature struct {
	Feature    string          `json:"feature"`
	Priority   domain.Priority `json:"priority"`
	Complexity ComplexityScore `json:"complexity"`
	Reasoning  string          `json:"reasoning"`
}

// Prioritize ranks features into tiers under a time budget. Features are
// visited cheapest first (stable, so equal scores keep input order) and the
// budget is charged greedily; the result is in visiting order.
func Prioritize(features []string, timelineWeeks float64, mvpGoal string) []PrioritizedFeature {
	items := make([]PrioritizedFeature, len(features))
	for i, f := range features {
		items[i] = PrioritizedFeature{Feature: f, Complexity: AnalyzeComplexity(f)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Complexity.Score < items[j].Complexity.Score
	})

	goalWords := strings.Fields(strings.ToLower(mvpGoal))
	budgeted := 0.0

	for i := range items {
		item := &items[i]
		weeks := float64(item.Complexity.EstimatedWeeks)
		score := item.Complexity.Score
		text := strings.ToLower(item.Feature)

		switch {
		case matchesGoal(text, goalWords) && budgeted+weeks <= mustHaveBudgetShare*timelineWeeks:
			budgeted += weeks
			item.Priority = domain.PriorityMustHave
			item.Reasoning = fmt.Sprintf("Directly supports the MVP goal and fits the budget (%.1f/%.1f weeks)", budgeted, timelineWeeks)
		case score <= shouldHaveMaxScore && budgeted+weeks <= shouldHaveBudgetShare*timelineWeeks:
			budgeted += weeks
			item.Priority = domain.PriorityShouldHave
			item.Reasoning = fmt.Sprintf("Low complexity and fits the budget (%.1f/%.1f weeks)", budgeted, timelineWeeks)
		case score <= niceToHaveMaxScore && budgeted+weeks <= timelineWeeks:
			item.Priority = domain.PriorityNiceToHave
			item.Reasoning = "Manageable complexity; build only if time remains"
		case score > tooComplexScore:
			item.Priority = domain.PriorityDefer
			item.Reasoning = fmt.Sprintf("Too complex for an MVP (score %.1f); revisit after launch", score)
		default:
			item.Priority = domain.PriorityDefer
			item.Reasoning = "Insufficient time in the current timeline"
		}
	}

	return items
}

func matchesGoal(featureText string, goalWords []string) bool {
	for _, w := range goalWords {
		if strings.Contains(featureText, w) {
			return true
		}
	}
	return false
}

// FilterByPriority returns the features in the given tier, preserving order.
func FilterByPriority(items []PrioritizedFeature, p domain.Priority) []PrioritizedFeature {
	var out []PrioritizedFeature
	for _, it := range items {
		if it.Priority == p {
			out = append(out, it)
		}
	}
	return out
}
