package analysis

import "fmt"

// ReadinessInput carries the four signals the readiness score is built from.
type ReadinessInput struct {
	PainLevel      int
	FeatureCount   int
	KnownTechCount int
	TimelineWeeks  int
}

// MVPReadiness is a 0-100 score with the notes that explain it.
type MVPReadiness struct {
	Score      int      `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Blockers   []string `json:"blockers"`
}

// ReadinessThreshold is the minimum score for a plan to proceed.
const ReadinessThreshold = 60

type readinessRule func(ReadinessInput, *MVPReadiness) int

// Each rule returns its deduction. The worst cases are 20, 30, 25 and 25,
// so the total never exceeds 100.
var readinessRules = []readinessRule{
	problemClarityRule,
	scopeControlRule,
	technicalFeasibilityRule,
	timelineRealismRule,
}

// ScoreReadiness starts at 100 and subtracts one deduction per rule bucket.
func ScoreReadiness(input ReadinessInput) MVPReadiness {
	r := MVPReadiness{}
	total := 0
	for _, rule := range readinessRules {
		total += rule(input, &r)
	}
	r.Score = max(0, 100-total)
	return r
}

func problemClarityRule(in ReadinessInput, r *MVPReadiness) int {
	switch {
	case in.PainLevel >= 8:
		r.Strengths = append(r.Strengths, fmt.Sprintf("Clear, painful problem (pain level %d/10)", in.PainLevel))
		return 0
	case in.PainLevel < 6:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Problem pain is low (%d/10): validate that people actually want this", in.PainLevel))
		return 20
	default:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Problem pain is moderate (%d/10): sharpen who feels it most", in.PainLevel))
		return 10
	}
}

func scopeControlRule(in ReadinessInput, r *MVPReadiness) int {
	switch {
	case in.FeatureCount <= 4:
		r.Strengths = append(r.Strengths, fmt.Sprintf("Focused scope (%d features)", in.FeatureCount))
		return 0
	case in.FeatureCount > 6:
		r.Blockers = append(r.Blockers, fmt.Sprintf("Scope too large: %d features for a solo MVP", in.FeatureCount))
		return 30
	default:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Scope is growing (%d features): cut to 4 or fewer", in.FeatureCount))
		return 15
	}
}

func technicalFeasibilityRule(in ReadinessInput, r *MVPReadiness) int {
	switch {
	case in.KnownTechCount <= 2:
		r.Strengths = append(r.Strengths, fmt.Sprintf("Lean tech stack (%d technologies)", in.KnownTechCount))
		return 0
	case in.KnownTechCount > 4:
		r.Blockers = append(r.Blockers, fmt.Sprintf("Too many technologies (%d): every new tool costs learning time", in.KnownTechCount))
		return 25
	default:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Tech stack has %d technologies: prefer tools you already know", in.KnownTechCount))
		return 12
	}
}

func timelineRealismRule(in ReadinessInput, r *MVPReadiness) int {
	switch {
	case in.TimelineWeeks >= 6 && in.TimelineWeeks <= 12:
		r.Strengths = append(r.Strengths, fmt.Sprintf("Realistic timeline (%d weeks)", in.TimelineWeeks))
		return 0
	case in.TimelineWeeks < 3:
		r.Blockers = append(r.Blockers, fmt.Sprintf("Timeline of %d weeks is not enough to build and launch", in.TimelineWeeks))
		return 25
	case in.TimelineWeeks > 20:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Timeline of %d weeks risks losing momentum: aim for 6-12", in.TimelineWeeks))
		return 15
	default:
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Timeline of %d weeks is outside the 6-12 week sweet spot", in.TimelineWeeks))
		return 10
	}
}
