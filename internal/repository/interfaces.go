package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/mvpcoach/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// ResolveID expands a unique ID prefix to the full session ID.
	ResolveID(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context, includeClosed bool) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type AnswerRepo interface {
	// Append stores a with the next seq for its session and sets a.Seq.
	Append(ctx context.Context, a *domain.AnswerEntry) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.AnswerEntry, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
}
