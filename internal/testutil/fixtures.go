package testutil

import (
	"time"

	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.Session)

func WithExperience(e domain.ExperienceLevel) SessionOption {
	return func(s *domain.Session) {
		s.Experience = e
	}
}

func WithStatus(st domain.SessionStatus) SessionOption {
	return func(s *domain.Session) {
		s.Status = st
	}
}

func WithUpdatedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.UpdatedAt = t
	}
}

func NewTestSession(projectName string, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:          uuid.New().String(),
		ProjectName: projectName,
		Experience:  domain.ExperienceIntermediate,
		Status:      domain.SessionInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestAnswer builds an answer to a script question. Unknown IDs get the ID
// as question text.
func NewTestAnswer(sessionID, questionID, answer string) *domain.AnswerEntry {
	text := questionID
	if q, ok := questions.ByID(questionID); ok {
		text = q.Text
	}
	return &domain.AnswerEntry{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		QuestionID:   questionID,
		QuestionText: text,
		QuestionType: questions.Question{Text: text}.Type(),
		AnswerText:   answer,
		AnsweredAt:   time.Now().UTC(),
	}
}

// ReadyAnswers is a complete, focused set of answers that passes every gate.
func ReadyAnswers() map[string]string {
	return map[string]string{
		questions.IDProjectName:        "Listly",
		questions.IDProjectDescription: "Shared todo lists for small households",
		questions.IDProblem:            "Couples forget groceries because lists live in separate apps",
		questions.IDPainLevel:          "9",
		questions.IDTargetAudience:     "Couples sharing a household",
		questions.IDValueProposition:   "Share todo lists instantly by link",
		questions.IDCoreFeatures:       "Create todo items, Share list by link, Mark todo items as done",
		questions.IDExtraFeatures:      "",
		questions.IDTechStack:          "Rails, Postgres",
		questions.IDUserScale:          "200",
		questions.IDTimeline:           "8 weeks",
		questions.IDReuseCode:          "no",
		questions.IDLaunchAudience:     "Couples sharing a household",
		questions.IDLaunchPlan:         "Post in two local parenting forums",
	}
}
