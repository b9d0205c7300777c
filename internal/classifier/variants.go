package classifier

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// Assessment is the question-specific part of coaching feedback. Exactly one
// concrete type exists per QuestionType.
type Assessment interface {
	Type() domain.QuestionType
}

type ProblemAssessment struct {
	PainLevel           int    `json:"pain_level"`
	Frequency           string `json:"frequency"`
	ExistingWorkarounds string `json:"existing_workarounds"`
}

type ValueAssessment struct {
	Differentiator string `json:"differentiator"`
	TargetCustomer string `json:"target_customer"`
}

type ScopeAssessment struct {
	CoreFeatures       []string `json:"core_features"`
	CutCandidates      []string `json:"cut_candidates"`
	ComplexityWarnings []string `json:"complexity_warnings"`
}

type TechStackAssessment struct {
	Technologies     []string `json:"technologies"`
	InnovationTokens int      `json:"innovation_tokens"`
	Overkill         []string `json:"overkill"`
}

type LaunchAssessment struct {
	Channels      []string `json:"channels"`
	SuccessMetric string   `json:"success_metric"`
}

type NameAssessment struct {
	Alternatives []string `json:"alternatives"`
}

type DescriptionAssessment struct {
	OneLiner string `json:"one_liner"`
}

type FeatureCountAssessment struct {
	Count       int `json:"count"`
	Recommended int `json:"recommended"`
}

// GenericAssessment carries no type-specific fields.
type GenericAssessment struct{}

func (ProblemAssessment) Type() domain.QuestionType      { return domain.QuestionProblemValidation }
func (ValueAssessment) Type() domain.QuestionType        { return domain.QuestionValueProposition }
func (ScopeAssessment) Type() domain.QuestionType        { return domain.QuestionMVPScope }
func (TechStackAssessment) Type() domain.QuestionType    { return domain.QuestionTechStack }
func (LaunchAssessment) Type() domain.QuestionType       { return domain.QuestionLaunchPlan }
func (NameAssessment) Type() domain.QuestionType         { return domain.QuestionProjectName }
func (DescriptionAssessment) Type() domain.QuestionType  { return domain.QuestionProjectDescription }
func (FeatureCountAssessment) Type() domain.QuestionType { return domain.QuestionFeatureCount }
func (GenericAssessment) Type() domain.QuestionType      { return domain.QuestionGeneric }

// NewAssessment returns an empty assessment for t.
func NewAssessment(t domain.QuestionType) Assessment {
	switch t {
	case domain.QuestionProblemValidation:
		return &ProblemAssessment{}
	case domain.QuestionValueProposition:
		return &ValueAssessment{}
	case domain.QuestionMVPScope:
		return &ScopeAssessment{}
	case domain.QuestionTechStack:
		return &TechStackAssessment{}
	case domain.QuestionLaunchPlan:
		return &LaunchAssessment{}
	case domain.QuestionProjectName:
		return &NameAssessment{}
	case domain.QuestionProjectDescription:
		return &DescriptionAssessment{}
	case domain.QuestionFeatureCount:
		return &FeatureCountAssessment{}
	default:
		return &GenericAssessment{}
	}
}

// DecodeAssessment decodes raw into the variant selected by t. Empty input
// yields the zero variant.
func DecodeAssessment(t domain.QuestionType, raw json.RawMessage) (Assessment, error) {
	a := NewAssessment(t)
	if len(raw) == 0 || string(raw) == "null" {
		return a, nil
	}
	if err := json.Unmarshal(raw, a); err != nil {
		return nil, fmt.Errorf("decoding %s assessment: %w", t, err)
	}
	return a, nil
}
