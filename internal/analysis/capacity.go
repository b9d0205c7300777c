package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

const (
	// projectOverhead covers testing, debugging and deployment.
	projectOverhead = 1.3

	maxHealthyUtilization   = 80.0
	tightUtilization        = 60.0
	comfortableUtilization  = 40.0
	recommendedCoreFeatures = 3
)

var experienceFactors = map[domain.ExperienceLevel]float64{
	domain.ExperienceBeginner:     1.5,
	domain.ExperienceIntermediate: 1.0,
	domain.ExperienceExpert:       0.8,
}

// ExperienceFactor returns the effort multiplier for a developer level.
// Unknown levels are treated as intermediate.
func ExperienceFactor(level domain.ExperienceLevel) float64 {
	if f, ok := experienceFactors[level]; ok {
		return f
	}
	return 1.0
}

// CapacityAnalysis compares the estimated effort of a feature set against the
// weeks available.
type CapacityAnalysis struct {
	Feasible           bool     `json:"feasible"`
	TotalComplexity    float64  `json:"total_complexity"`
	EstimatedWeeks     float64  `json:"estimated_weeks"`
	AvailableWeeks     float64  `json:"available_weeks"`
	UtilizationPercent float64  `json:"utilization_percent"`
	Recommendations    []string `json:"recommendations"`
}

// ValidateCapacity estimates whether features fit into timelineWeeks for a
// developer at the given experience level. A non-positive timeline is never
// feasible and reports infinite utilisation.
func ValidateCapacity(features []string, timelineWeeks float64, experience domain.ExperienceLevel) CapacityAnalysis {
	scores := make([]ComplexityScore, len(features))
	var totalComplexity float64
	rawWeeks := 0
	for i, f := range features {
		scores[i] = AnalyzeComplexity(f)
		totalComplexity += scores[i].Score
		rawWeeks += scores[i].EstimatedWeeks
	}

	adjusted := float64(rawWeeks) * ExperienceFactor(experience) * projectOverhead

	utilization := math.Inf(1)
	if timelineWeeks > 0 {
		utilization = adjusted / timelineWeeks * 100
	}

	result := CapacityAnalysis{
		Feasible:           isFeasible(utilization),
		TotalComplexity:    totalComplexity,
		EstimatedWeeks:     adjusted,
		AvailableWeeks:     timelineWeeks,
		UtilizationPercent: utilization,
	}

	switch {
	case !result.Feasible:
		result.Recommendations = infeasibleRecommendations(features, scores, adjusted)
	case utilization > tightUtilization:
		result.Recommendations = []string{"Timeline is tight but achievable: add a buffer week for surprises"}
	case utilization < comfortableUtilization:
		result.Recommendations = []string{"Good buffer: consider launching earlier"}
	}

	return result
}

func isFeasible(utilizationPercent float64) bool {
	return utilizationPercent <= maxHealthyUtilization
}

func infeasibleRecommendations(features []string, scores []ComplexityScore, adjustedWeeks float64) []string {
	recs := []string{"Timeline is too aggressive for this feature set"}

	if len(features) > recommendedCoreFeatures {
		recs = append(recs, fmt.Sprintf("Reduce scope to %d core features (currently %d)", recommendedCoreFeatures, len(features)))
	}

	var heavy []string
	for i, s := range scores {
		if s.Level == domain.ComplexityHigh || s.Level == domain.ComplexityExtreme {
			heavy = append(heavy, fmt.Sprintf("%q (%s)", features[i], s.Level))
		}
	}
	if len(heavy) > 0 {
		recs = append(recs, "Defer complex features to after launch: "+strings.Join(heavy, ", "))
	}

	suggested := int(math.Ceil(adjustedWeeks / (maxHealthyUtilization / 100)))
	recs = append(recs, fmt.Sprintf("Or extend the timeline to at least %d weeks", suggested))
	return recs
}
