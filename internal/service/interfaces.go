package service

import (
	"context"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
)

type SessionService interface {
	Start(ctx context.Context, projectName string, experience domain.ExperienceLevel) (*domain.Session, error)
	// Get accepts a full session ID or a unique prefix.
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Session, error)
	RecordAnswer(ctx context.Context, sessionID string, q questions.Question, answer string) (*domain.AnswerEntry, error)
	History(ctx context.Context, sessionID string) ([]domain.AnswerEntry, error)
	Context(ctx context.Context, sessionID string) (domain.DerivedContext, error)
	// NextQuestion returns ok=false once the script is exhausted.
	NextQuestion(ctx context.Context, sessionID string) (q questions.Question, ok bool, err error)
	Complete(ctx context.Context, sessionID string) (*domain.Session, error)
	Abandon(ctx context.Context, sessionID string) (*domain.Session, error)
}

type ValidationService interface {
	ValidateSession(ctx context.Context, sessionID string) (*analysis.PlanReport, error)
	ValidateContext(dc domain.DerivedContext, history []domain.AnswerEntry) analysis.PlanReport
}
