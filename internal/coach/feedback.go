// Package coach challenges wizard answers. A local LLM critiques each answer
// against its question type's requirements; when the model is disabled,
// unreachable or returns something unusable, the analysis engine produces
// the feedback instead.
package coach

import (
	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// Feedback sources.
const (
	SourceLLM           = "llm"
	SourceDeterministic = "deterministic"
)

// MaxScore is the best answer score.
const MaxScore = 10

// Issue is one problem found in an answer. Severity always comes from the
// question type's configuration, never from the model.
type Issue struct {
	Tag      string          `json:"tag"`
	Severity domain.Severity `json:"severity"`
	Message  string          `json:"message"`
}

// Feedback is the critique of one answer.
type Feedback struct {
	Type        domain.QuestionType   `json:"type"`
	Score       int                   `json:"score"`
	Issues      []Issue               `json:"issues"`
	Suggestions []string              `json:"suggestions"`
	Assessment  classifier.Assessment `json:"assessment"`
	Source      string                `json:"source"`
}

// HasCritical reports whether any issue is critical.
func (f *Feedback) HasCritical() bool {
	for _, is := range f.Issues {
		if is.Severity == domain.SeverityCritical {
			return true
		}
	}
	return false
}

// Tags returns the issue tags in order.
func (f *Feedback) Tags() []string {
	tags := make([]string, 0, len(f.Issues))
	for _, is := range f.Issues {
		tags = append(tags, is.Tag)
	}
	return tags
}
