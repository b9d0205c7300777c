package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/classifier"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/llm"
	"github.com/alexanderramin/mvpcoach/internal/questions"
)

var errUnknownTag = errors.New("unknown issue tag")

// CoachService critiques and rewrites wizard answers.
type CoachService interface {
	// Challenge critiques answer. It always returns feedback; model
	// failures fall back to DeterministicFeedback.
	Challenge(ctx context.Context, q questions.Question, answer string, dc domain.DerivedContext) (*Feedback, error)

	// Improve rewrites answer using fb. Without a usable model the
	// original answer is returned unchanged.
	Improve(ctx context.Context, q questions.Question, answer string, fb *Feedback) (string, error)
}

type coachService struct {
	client llm.LLMClient
}

// NewCoachService creates a CoachService. A nil client coaches with the
// analysis engine only.
func NewCoachService(client llm.LLMClient) CoachService {
	return &coachService{client: client}
}

type challengeIssue struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type challengeResponse struct {
	Score       int              `json:"score"`
	Issues      []challengeIssue `json:"issues"`
	Suggestions []string         `json:"suggestions"`
	Details     json.RawMessage  `json:"details"`
}

func (s *coachService) Challenge(ctx context.Context, q questions.Question, answer string, dc domain.DerivedContext) (*Feedback, error) {
	if s.client == nil {
		return DeterministicFeedback(q, answer, dc), nil
	}
	fb, err := s.generate(ctx, q, answer, dc)
	if err != nil {
		return DeterministicFeedback(q, answer, dc), nil
	}
	return fb, nil
}

func (s *coachService) generate(ctx context.Context, q questions.Question, answer string, dc domain.DerivedContext) (*Feedback, error) {
	t := q.Type()
	cfg := classifier.Config(t)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChallenge,
		SystemPrompt: buildChallengeSystemPrompt(cfg),
		UserPrompt:   buildChallengeUserPrompt(q.Text, answer, dc),
	})
	if err != nil {
		return nil, fmt.Errorf("llm challenge failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[challengeResponse](resp.Text, validateChallengeResponse)
	if err != nil {
		return nil, fmt.Errorf("extract challenge response: %w", err)
	}

	assessment, err := classifier.DecodeAssessment(t, parsed.Details)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrInvalidOutput, err)
	}

	fb := &Feedback{
		Type:        t,
		Score:       parsed.Score,
		Suggestions: parsed.Suggestions,
		Assessment:  assessment,
		Source:      SourceLLM,
	}
	for _, is := range parsed.Issues {
		if !cfg.KnowsTag(is.Tag) {
			return nil, fmt.Errorf("%w: %q for %s", errUnknownTag, is.Tag, t)
		}
		fb.Issues = append(fb.Issues, Issue{Tag: is.Tag, Severity: cfg.Severity(is.Tag), Message: is.Message})
	}
	return fb, nil
}

func validateChallengeResponse(resp challengeResponse) error {
	if resp.Score < 0 || resp.Score > MaxScore {
		return fmt.Errorf("score must be between 0 and %d, got %d", MaxScore, resp.Score)
	}
	for i, is := range resp.Issues {
		if strings.TrimSpace(is.Tag) == "" {
			return fmt.Errorf("issue %d has no tag", i)
		}
	}
	return nil
}

func (s *coachService) Improve(ctx context.Context, q questions.Question, answer string, fb *Feedback) (string, error) {
	if s.client == nil || fb == nil || len(fb.Issues) == 0 {
		return answer, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskImprove,
		SystemPrompt: improveSystemPrompt,
		UserPrompt:   buildImproveUserPrompt(q.Text, answer, fb),
	})
	if err != nil {
		return answer, nil
	}

	improved := cleanRewrite(resp.Text)
	if improved == "" {
		return answer, nil
	}
	return improved, nil
}

// cleanRewrite strips fences and wrapping quotes that models add around
// plain-text output.
func cleanRewrite(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	out := strings.TrimSpace(strings.Join(kept, "\n"))
	if len(out) >= 2 && out[0] == '"' && out[len(out)-1] == '"' {
		out = strings.TrimSpace(out[1 : len(out)-1])
	}
	return out
}
