// Package classifier maps wizard question text to a QuestionType and carries
// the per-type coaching configuration: validation requirements, issue-tag
// severities and the structured assessment each type produces.
package classifier

import (
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// KeywordGroup is a set of keywords that share a weight.
type KeywordGroup struct {
	Weight   int
	Keywords []string
}

// TypeConfig describes how a question type is detected and coached.
type TypeConfig struct {
	Type domain.QuestionType

	// Groups are matched as case-insensitive substrings of the question.
	Groups []KeywordGroup

	// MinScore is the weighted score a question needs to qualify.
	MinScore int

	// Requirements are shown to the coach and the user as the bar an
	// answer has to clear.
	Requirements []string

	// Critical and Warning partition the issue tags a coach may raise.
	Critical []string
	Warning  []string
}

const defaultMinScore = 3

// typeConfigs is evaluated in order; on equal scores the earlier entry wins.
var typeConfigs = []TypeConfig{
	{
		Type: domain.QuestionProjectName,
		Groups: []KeywordGroup{
			{Weight: 3, Keywords: []string{"project name", "name of your", "call your", "call it"}},
			{Weight: 1, Keywords: []string{"name"}},
		},
		MinScore: defaultMinScore,
		Requirements: []string{
			"Short and easy to say out loud",
			"Hints at what the product does",
		},
		Warning: []string{"too_long", "generic_name"},
	},
	{
		Type: domain.QuestionProjectDescription,
		Groups: []KeywordGroup{
			{Weight: 3, Keywords: []string{"describe", "description", "one sentence", "elevator pitch"}},
			{Weight: 1, Keywords: []string{"what does", "what is your project"}},
		},
		MinScore: defaultMinScore,
		Requirements: []string{
			"Fits in one sentence",
			"Names who it is for and what it does for them",
			"Avoids buzzwords",
		},
		Critical: []string{"empty_description"},
		Warning:  []string{"too_long", "buzzwords"},
	},
	{
		Type: domain.QuestionFeatureCount,
		Groups: []KeywordGroup{
			{Weight: 3, Keywords: []string{"how many features", "number of features", "feature count"}},
			{Weight: 1, Keywords: []string{"how many"}},
		},
		MinScore: defaultMinScore,
		Requirements: []string{
			"A concrete number",
			"Three to five features for a first release",
		},
		Critical: []string{"too_many_features"},
		Warning:  []string{"not_a_number"},
	},
	{
		Type: domain.QuestionProblemValidation,
		Groups: []KeywordGroup{
			{Weight: 3, Keywords: []string{"problem", "pain", "struggle", "frustrat"}},
			{Weight: 2, Keywords: []string{"who has", "how often", "currently solve", "workaround"}},
			{Weight: 1, Keywords: []string{"why"}},
		},
		MinScore: defaultMinScore,
		Requirements: []string{
			"Describes a problem, not a solution",
			"Names a specific group of people who have it",
			"Says how often it happens",
			"Mentions how people cope with it today",
		},
		Critical: []string{"no_pain_evidence", "solution_not_problem"},
		Warning:  []string{"vague_audience", "no_frequency"},
	},
	{
		Type: domain.QuestionValueProposition,
		Groups: []KeywordGroup{
			{Weight: 3, Keywords: []string{"value proposition", "unique", "different", "why would", "instead of"}},
			{Weight: 2, Keywords: []string{"benefit", "competitor", "alternative"}},
			{Weight: 1, Keywords: []string{"value", "better"}},
		},
		MinScore: defaultMinScore,
		Requirements: []string{
			"States the outcome the user gets",
			"Explains why it beats the current alternative",
			"Names the customer it is for",
		},
		Critical: []string{"no_differentiator"},
		Warning:  []string{"feature_list_not_value", "no_target_customer"},
	},
	{
		Type: domain.QuestionMVPScope,
		Groups: []KeywordGroup{
			{Weight: 3, Keywords: []string{"mvp", "scope", "must-have", "core feature"}},
			{Weight: 2, Keywords: []string{"feature", "minimum", "launch without"}},
			{Weight: 1, Keywords: []string{"build", "include"}},
		},
		MinScore: defaultMinScore,
		Requirements: []string{
			"Three to five features",
			"Each feature is a concrete user action",
			"Every feature serves the core problem",
		},
		Critical: []string{"too_many_features", "scope_creep"},
		Warning:  []string{"high_complexity_feature", "vague_feature"},
	},
	{
		Type: domain.QuestionTechStack,
		Groups: []KeywordGroup{
			{Weight: 3, Keywords: []string{"technolog", "database", "stack"}},
			{Weight: 2, Keywords: []string{"backend", "frontend", "framework", "language", "hosting", "deploy", "scale", "how many users"}},
			{Weight: 1, Keywords: []string{"tool", "library", "use"}},
		},
		MinScore: defaultMinScore,
		Requirements: []string{
			"Uses technology you already know",
			"Spends at most three innovation tokens",
			"Fits the expected number of users",
		},
		Critical: []string{"overengineering"},
		Warning:  []string{"innovation_budget_exceeded", "unfamiliar_tech"},
	},
	{
		Type: domain.QuestionLaunchPlan,
		Groups: []KeywordGroup{
			{Weight: 3, Keywords: []string{"launch", "go-to-market", "first users", "first customers", "marketing"}},
			{Weight: 2, Keywords: []string{"announce", "channel", "promote", "distribution"}},
			{Weight: 1, Keywords: []string{"when", "where"}},
		},
		MinScore: defaultMinScore,
		Requirements: []string{
			"Names at least one channel where your users already are",
			"Defines what a successful launch looks like",
			"Launches within twelve weeks",
		},
		Critical: []string{"no_channel"},
		Warning:  []string{"no_success_metric", "launch_too_late"},
	},
}

var genericConfig = TypeConfig{
	Type:     domain.QuestionGeneric,
	MinScore: defaultMinScore,
	Requirements: []string{
		"Answers the question directly",
		"Is specific enough to act on",
	},
	Warning: []string{"too_short"},
}

var listQuestionKeywords = []string{"list", "enumerate", "name", "what are", "which", "features", "metrics", "risks"}

// DetectType returns the highest scoring question type whose score reaches
// its MinScore, or QuestionGeneric when none does.
func DetectType(question string) domain.QuestionType {
	text := strings.ToLower(question)

	best := domain.QuestionGeneric
	bestScore := 0
	for _, cfg := range typeConfigs {
		s := cfg.score(text)
		if s < cfg.MinScore {
			continue
		}
		if s > bestScore {
			best, bestScore = cfg.Type, s
		}
	}
	return best
}

// Score returns the weighted keyword score of question for type t. Unknown
// types and QuestionGeneric score zero.
func Score(question string, t domain.QuestionType) int {
	for _, cfg := range typeConfigs {
		if cfg.Type == t {
			return cfg.score(strings.ToLower(question))
		}
	}
	return 0
}

func (c TypeConfig) score(text string) int {
	total := 0
	for _, g := range c.Groups {
		for _, kw := range g.Keywords {
			if strings.Contains(text, kw) {
				total += g.Weight
			}
		}
	}
	return total
}

// Config returns the configuration for t, falling back to the generic one.
func Config(t domain.QuestionType) TypeConfig {
	for _, cfg := range typeConfigs {
		if cfg.Type == t {
			return cfg
		}
	}
	return genericConfig
}

// Types lists the detectable question types in evaluation order.
func Types() []domain.QuestionType {
	out := make([]domain.QuestionType, 0, len(typeConfigs))
	for _, cfg := range typeConfigs {
		out = append(out, cfg.Type)
	}
	return out
}

// ValidationRequirements returns the bullet points an answer to a question of
// this type should satisfy.
func (c TypeConfig) ValidationRequirements() []string {
	return c.Requirements
}

// Severity classifies an issue tag. Tags the type does not know are info.
func (c TypeConfig) Severity(tag string) domain.Severity {
	for _, t := range c.Critical {
		if t == tag {
			return domain.SeverityCritical
		}
	}
	for _, t := range c.Warning {
		if t == tag {
			return domain.SeverityWarning
		}
	}
	return domain.SeverityInfo
}

// KnowsTag reports whether tag belongs to this type's severity split.
func (c TypeConfig) KnowsTag(tag string) bool {
	return c.Severity(tag) != domain.SeverityInfo
}

// IsListQuestion reports whether question asks for several items.
func IsListQuestion(question string) bool {
	text := strings.ToLower(question)
	for _, kw := range listQuestionKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
