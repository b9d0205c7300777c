package analysis

import (
	"math"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

const (
	planningWeeks   = 0.5
	deploymentWeeks = 0.5
	testingShare    = 0.2
	bufferShare     = 0.3
	codeReuseFactor = 0.8
	lowRiskRatio    = 1.2
	mediumRiskRatio = 0.9
	highRiskRatio   = 0.6
)

// TimelineInput is the raw material for a timeline sanity check.
type TimelineInput struct {
	FeatureWeeks      float64
	TargetWeeks       float64
	ReuseExistingCode bool
}

// TimelineCheck breaks down a realistic timeline and rates the target
// against it.
type TimelineCheck struct {
	FeatureWeeks  float64          `json:"feature_weeks"`
	Planning      float64          `json:"planning_weeks"`
	Testing       float64          `json:"testing_weeks"`
	Deployment    float64          `json:"deployment_weeks"`
	Buffer        float64          `json:"buffer_weeks"`
	AdjustedWeeks float64          `json:"adjusted_weeks"`
	TargetWeeks   float64          `json:"target_weeks"`
	Ratio         float64          `json:"ratio"`
	Risk          domain.RiskLevel `json:"risk"`
	Sane          bool             `json:"sane"`
}

// CheckTimelineSanity derives an adjusted timeline from base feature weeks
// and classifies the target by target/adjusted.
func CheckTimelineSanity(input TimelineInput) TimelineCheck {
	base := math.Max(0, input.FeatureWeeks)

	check := TimelineCheck{
		FeatureWeeks: base,
		Planning:     planningWeeks,
		Testing:      math.Ceil(base * testingShare),
		Deployment:   deploymentWeeks,
		Buffer:       math.Ceil(base * bufferShare),
		TargetWeeks:  input.TargetWeeks,
	}

	adjusted := base + check.Planning + check.Testing + check.Deployment + check.Buffer
	if input.ReuseExistingCode {
		adjusted *= codeReuseFactor
	}
	check.AdjustedWeeks = adjusted

	// adjusted is at least planning+deployment (or 80% of it), never zero.
	if input.TargetWeeks > 0 {
		check.Ratio = input.TargetWeeks / adjusted
	}

	check.Risk = timelineRisk(check.Ratio)
	check.Sane = check.Risk != domain.RiskExtreme
	return check
}

func timelineRisk(ratio float64) domain.RiskLevel {
	switch {
	case ratio >= lowRiskRatio:
		return domain.RiskLow
	case ratio >= mediumRiskRatio:
		return domain.RiskMedium
	case ratio >= highRiskRatio:
		return domain.RiskHigh
	default:
		return domain.RiskExtreme
	}
}

// FeatureWeeks sums the complexity estimate of every feature.
func FeatureWeeks(features []string) float64 {
	total := 0
	for _, f := range features {
		total += AnalyzeComplexity(f).EstimatedWeeks
	}
	return float64(total)
}
