// Package questions holds the wizard's fixed question script and folds
// answers into a DerivedContext.
package questions

import (
	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// Phase groups questions for display.
type Phase string

const (
	PhaseBasics  Phase = "basics"
	PhaseProblem Phase = "problem"
	PhaseValue   Phase = "value"
	PhaseScope   Phase = "scope"
	PhaseTech    Phase = "tech"
	PhaseLaunch  Phase = "launch"
)

// Answer kinds control how Apply parses the text.
type Kind string

const (
	KindText   Kind = "text"
	KindList   Kind = "list"
	KindNumber Kind = "number"
	KindYesNo  Kind = "yes_no"
)

const (
	IDProjectName        = "project_name"
	IDProjectDescription = "project_description"
	IDProblem            = "problem"
	IDPainLevel          = "pain_level"
	IDTargetAudience     = "target_audience"
	IDValueProposition   = "value_proposition"
	IDCoreFeatures       = "core_features"
	IDExtraFeatures      = "extra_features"
	IDTechStack          = "tech_stack"
	IDUserScale          = "user_scale"
	IDTimeline           = "timeline"
	IDReuseCode          = "reuse_code"
	IDLaunchAudience     = "launch_audience"
	IDLaunchPlan         = "launch_plan"
)

// Question is one step of the wizard.
type Question struct {
	ID       string
	Phase    Phase
	Text     string
	Help     string
	Kind     Kind
	Optional bool
}

// Type classifies the question text.
func (q Question) Type() domain.QuestionType {
	return classifier.DetectType(q.Text)
}

// Script returns the wizard questions in the order they are asked.
func Script() []Question {
	return []Question{
		{
			ID:    IDProjectName,
			Phase: PhaseBasics,
			Text:  "What is your project name?",
			Kind:  KindText,
		},
		{
			ID:    IDProjectDescription,
			Phase: PhaseBasics,
			Text:  "Describe your project in one sentence.",
			Help:  "Who is it for and what does it do for them?",
			Kind:  KindText,
		},
		{
			ID:    IDProblem,
			Phase: PhaseProblem,
			Text:  "What problem are you solving, and who has it?",
			Help:  "Describe the problem, not your solution.",
			Kind:  KindText,
		},
		{
			ID:    IDPainLevel,
			Phase: PhaseProblem,
			Text:  "On a scale of 1-10, how painful is this problem for them today?",
			Kind:  KindNumber,
		},
		{
			ID:    IDTargetAudience,
			Phase: PhaseProblem,
			Text:  "Who is your target audience?",
			Help:  "Be specific: \"freelance designers billing hourly\" beats \"small businesses\".",
			Kind:  KindText,
		},
		{
			ID:    IDValueProposition,
			Phase: PhaseValue,
			Text:  "What makes your solution different from how people solve this today?",
			Kind:  KindText,
		},
		{
			ID:    IDCoreFeatures,
			Phase: PhaseScope,
			Text:  "List the core features your MVP must have.",
			Help:  "One per line or comma separated. Aim for three to five.",
			Kind:  KindList,
		},
		{
			ID:       IDExtraFeatures,
			Phase:    PhaseScope,
			Text:     "Which nice-to-have features could wait until after the MVP ships?",
			Help:     "Leave empty if there are none.",
			Kind:     KindList,
			Optional: true,
		},
		{
			ID:    IDTechStack,
			Phase: PhaseTech,
			Text:  "Which technologies will you use for your stack?",
			Help:  "Languages, frameworks, database and hosting, comma separated.",
			Kind:  KindList,
		},
		{
			ID:    IDUserScale,
			Phase: PhaseTech,
			Text:  "How many users do you expect in the first 6 months?",
			Kind:  KindNumber,
		},
		{
			ID:    IDTimeline,
			Phase: PhaseLaunch,
			Text:  "How many weeks until you want to launch?",
			Kind:  KindNumber,
		},
		{
			ID:       IDReuseCode,
			Phase:    PhaseLaunch,
			Text:     "Will you reuse existing code or a starter template? (yes/no)",
			Kind:     KindYesNo,
			Optional: true,
		},
		{
			ID:    IDLaunchAudience,
			Phase: PhaseLaunch,
			Text:  "Who exactly are the first target audience users you will reach?",
			Kind:  KindText,
		},
		{
			ID:    IDLaunchPlan,
			Phase: PhaseLaunch,
			Text:  "Where will you announce the launch, and which channels will bring your first users?",
			Kind:  KindText,
		},
	}
}

// ByID looks up a script question.
func ByID(id string) (Question, bool) {
	for _, q := range Script() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Next returns the first script question without an answer in history.
// ok is false once every question has been answered.
func Next(history []domain.AnswerEntry) (Question, bool) {
	answered := make(map[string]bool, len(history))
	for _, e := range history {
		answered[e.QuestionID] = true
	}
	for _, q := range Script() {
		if !answered[q.ID] {
			return q, true
		}
	}
	return Question{}, false
}

// Progress returns how many distinct script questions are answered and the
// script length.
func Progress(history []domain.AnswerEntry) (answered, total int) {
	seen := make(map[string]bool)
	script := Script()
	for _, e := range history {
		if _, ok := ByID(e.QuestionID); ok {
			seen[e.QuestionID] = true
		}
	}
	return len(seen), len(script)
}
