package analysis

import (
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// PlanInput is everything the composite validator needs: the derived
// session context plus the raw answer history for consistency checks.
type PlanInput struct {
	Context domain.DerivedContext
	History []domain.AnswerEntry
}

// PlanReport bundles every engine verdict for one validation pass.
type PlanReport struct {
	Complexity      []FeatureComplexity   `json:"complexity"`
	Capacity        CapacityAnalysis      `json:"capacity"`
	Timeline        TimelineCheck         `json:"timeline"`
	Overengineering OverengineeringReport `json:"overengineering"`
	Innovation      InnovationBudget      `json:"innovation"`
	Priorities      []PrioritizedFeature  `json:"priorities"`
	Readiness       MVPReadiness          `json:"readiness"`
	Scope           ScopeCheck            `json:"scope"`
	Consistency     ConsistencyCheck      `json:"consistency"`
	ShouldProceed   bool                  `json:"should_proceed"`
}

// FeatureComplexity pairs a feature with its score.
type FeatureComplexity struct {
	Feature    string          `json:"feature"`
	Complexity ComplexityScore `json:"complexity"`
}

// Validate runs every check over the current plan. The verdicts are
// independent and may disagree; ShouldProceed requires no readiness
// blockers, a readiness score of at least ReadinessThreshold and a valid
// scope.
func Validate(input PlanInput) PlanReport {
	dc := input.Context
	features := dc.AllFeatures()
	weeks := float64(dc.TimelineWeeks)

	experience := dc.Experience
	if experience == "" {
		experience = domain.ExperienceIntermediate
	}

	report := PlanReport{
		Capacity: ValidateCapacity(features, weeks, experience),
		Timeline: CheckTimelineSanity(TimelineInput{
			FeatureWeeks:      FeatureWeeks(features),
			TargetWeeks:       weeks,
			ReuseExistingCode: dc.ReuseExistingCode,
		}),
		Overengineering: DetectOverengineering(dc.TechStack, features, dc.UserCount),
		Innovation:      CountInnovationTokens(dc.TechStack),
		Priorities:      Prioritize(features, weeks, dc.MVPGoal),
		Readiness: ScoreReadiness(ReadinessInput{
			PainLevel:      dc.PainLevel,
			FeatureCount:   len(features),
			KnownTechCount: countDistinct(dc.TechStack),
			TimelineWeeks:  dc.TimelineWeeks,
		}),
		Scope:       ProtectScope(len(features), weeks),
		Consistency: CheckConsistency(input.History, dc),
	}

	for _, f := range features {
		report.Complexity = append(report.Complexity, FeatureComplexity{Feature: f, Complexity: AnalyzeComplexity(f)})
	}

	report.ShouldProceed = len(report.Readiness.Blockers) == 0 &&
		report.Readiness.Score >= ReadinessThreshold &&
		report.Scope.Valid

	return report
}

func countDistinct(items []string) int {
	seen := make(map[string]bool)
	for _, it := range items {
		key := normalizeName(it)
		if key != "" {
			seen[key] = true
		}
	}
	return len(seen)
}
