// Package analysis holds the plan validation engine: keyword-driven
// complexity scoring, capacity and timeline checks, over-engineering
// detection, feature prioritisation, readiness scoring and answer
// consistency checks. Every function is pure and never fails.
package analysis

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

const (
	highKeywordWeight   = 3.0
	mediumKeywordWeight = 1.5
	scopeCreepPenalty   = 2.0
	longTextPenalty     = 1.0
	longTextThreshold   = 100

	minComplexity = 1.0
	maxComplexity = 10.0
)

// ComplexityScore is the implementation cost estimate for one feature.
type ComplexityScore struct {
	Score          float64                `json:"score"`
	Level          domain.ComplexityLevel `json:"level"`
	Warnings       []string               `json:"warnings"`
	EstimatedWeeks int                    `json:"estimated_weeks"`
}

// AnalyzeComplexity scores a single free-text feature description.
//
// Each keyword tier contributes weight × number of distinct keywords matched.
// Tiers are evaluated independently, so a substring that appears in two
// tables counts twice.
func AnalyzeComplexity(feature string) ComplexityScore {
	text := strings.ToLower(feature)
	score := minComplexity
	var warnings []string

	if high := matchKeywords(text, highComplexityKeywords); len(high) > 0 {
		score += highKeywordWeight * float64(len(high))
		warnings = append(warnings, fmt.Sprintf("High complexity: %s", joinTrimmed(high)))
	}

	if medium := matchKeywords(text, mediumComplexityKeywords); len(medium) > 0 {
		score += mediumKeywordWeight * float64(len(medium))
		warnings = append(warnings, fmt.Sprintf("Medium complexity: %s", joinTrimmed(medium)))
	}

	if containsAny(text, scopeCreepPhrases) {
		score += scopeCreepPenalty
		warnings = append(warnings, "Scope creep detected: consider splitting this into separate features")
	}

	if utf8.RuneCountInString(feature) > longTextThreshold {
		score += longTextPenalty
		warnings = append(warnings, "Long description: this might be multiple features")
	}

	score = clamp(score, minComplexity, maxComplexity)

	return ComplexityScore{
		Score:          score,
		Level:          complexityLevel(score),
		Warnings:       warnings,
		EstimatedWeeks: int(math.Ceil(score / 2)),
	}
}

func complexityLevel(score float64) domain.ComplexityLevel {
	switch {
	case score <= 3:
		return domain.ComplexityLow
	case score <= 5:
		return domain.ComplexityMedium
	case score <= 8:
		return domain.ComplexityHigh
	default:
		return domain.ComplexityExtreme
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// joinTrimmed joins keywords for display, dropping the padding some table
// entries carry.
func joinTrimmed(keywords []string) string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.Trim(kw, " -")
	}
	return strings.Join(out, ", ")
}
