package domain

import (
	"fmt"
	"strings"
)

type ComplexityLevel string

const (
	ComplexityLow     ComplexityLevel = "low"
	ComplexityMedium  ComplexityLevel = "medium"
	ComplexityHigh    ComplexityLevel = "high"
	ComplexityExtreme ComplexityLevel = "extreme"
)

type Priority string

const (
	PriorityMustHave   Priority = "must-have"
	PriorityShouldHave Priority = "should-have"
	PriorityNiceToHave Priority = "nice-to-have"
	PriorityDefer      Priority = "defer"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

// ParseExperienceLevel accepts the three level names case-insensitively.
// An empty string maps to intermediate.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ExperienceIntermediate, nil
	case "beginner":
		return ExperienceBeginner, nil
	case "intermediate":
		return ExperienceIntermediate, nil
	case "expert":
		return ExperienceExpert, nil
	default:
		return "", fmt.Errorf("unknown experience level %q (use beginner, intermediate or expert)", s)
	}
}

type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

type QuestionType string

const (
	QuestionProjectName        QuestionType = "project-name"
	QuestionProjectDescription QuestionType = "project-description"
	QuestionFeatureCount       QuestionType = "feature-count"
	QuestionProblemValidation  QuestionType = "problem-validation"
	QuestionValueProposition   QuestionType = "value-proposition"
	QuestionMVPScope           QuestionType = "mvp-scope"
	QuestionTechStack          QuestionType = "tech-stack"
	QuestionLaunchPlan         QuestionType = "launch-plan"
	QuestionGeneric            QuestionType = "generic"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)
