package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mvpcoach/internal/db"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/alexanderramin/mvpcoach/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	answers  repository.AnswerRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	answers repository.AnswerRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions: sessions,
		answers:  answers,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Start(ctx context.Context, projectName string, experience domain.ExperienceLevel) (session *domain.Session, err error) {
	defer observe(ctx, s.observer, "start-session", time.Now(), map[string]any{"experience": string(experience)}, &err)

	if experience == "" {
		experience = domain.ExperienceIntermediate
	}
	if _, err = domain.ParseExperienceLevel(string(experience)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session = &domain.Session{
		ID:          uuid.New().String(),
		ProjectName: strings.TrimSpace(projectName),
		Experience:  experience,
		Status:      domain.SessionInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	full, err := s.sessions.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.sessions.GetByID(ctx, full)
}

func (s *sessionService) List(ctx context.Context, includeClosed bool) ([]*domain.Session, error) {
	return s.sessions.List(ctx, includeClosed)
}

// RecordAnswer appends an answer and touches the session in one transaction.
// Answering the project-name question also renames the session, and
// answering an abandoned session reopens it.
func (s *sessionService) RecordAnswer(ctx context.Context, sessionID string, q questions.Question, answer string) (entry *domain.AnswerEntry, err error) {
	fields := map[string]any{"session_id": sessionID, "question_id": q.ID}
	defer observe(ctx, s.observer, "record-answer", time.Now(), fields, &err)

	now := time.Now().UTC()
	entry = &domain.AnswerEntry{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		QuestionID:   q.ID,
		QuestionText: q.Text,
		QuestionType: q.Type(),
		AnswerText:   strings.TrimSpace(answer),
		AnsweredAt:   now,
	}
	fields["question_type"] = string(entry.QuestionType)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txAnswers := repository.NewSQLiteAnswerRepo(tx)

		session, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if session.Status == domain.SessionCompleted {
			return fmt.Errorf("recording answer for %s: %w", sessionID, ErrSessionCompleted)
		}

		if err := txAnswers.Append(ctx, entry); err != nil {
			return err
		}

		session.Status = domain.SessionInProgress
		session.UpdatedAt = now
		if q.ID == questions.IDProjectName && entry.AnswerText != "" {
			session.ProjectName = entry.AnswerText
		}
		return txSessions.Update(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	fields["seq"] = entry.Seq
	return entry, nil
}

func (s *sessionService) History(ctx context.Context, sessionID string) ([]domain.AnswerEntry, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.answers.ListBySession(ctx, sessionID)
}

// Context replays the session's answers in seq order.
func (s *sessionService) Context(ctx context.Context, sessionID string) (domain.DerivedContext, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return domain.DerivedContext{}, err
	}
	history, err := s.answers.ListBySession(ctx, sessionID)
	if err != nil {
		return domain.DerivedContext{}, err
	}
	dc := questions.BuildContext(history, session.Experience)
	dc.ProjectName = domain.CoalesceStr(dc.ProjectName, session.ProjectName)
	return dc, nil
}

func (s *sessionService) NextQuestion(ctx context.Context, sessionID string) (questions.Question, bool, error) {
	history, err := s.History(ctx, sessionID)
	if err != nil {
		return questions.Question{}, false, err
	}
	q, ok := questions.Next(history)
	return q, ok, nil
}

func (s *sessionService) Complete(ctx context.Context, sessionID string) (session *domain.Session, err error) {
	defer observe(ctx, s.observer, "complete-session", time.Now(), map[string]any{"session_id": sessionID}, &err)

	return s.transition(ctx, sessionID, func(session *domain.Session, now time.Time) error {
		if session.Status == domain.SessionCompleted {
			return nil
		}
		session.Status = domain.SessionCompleted
		session.CompletedAt = &now
		return nil
	})
}

func (s *sessionService) Abandon(ctx context.Context, sessionID string) (session *domain.Session, err error) {
	defer observe(ctx, s.observer, "abandon-session", time.Now(), map[string]any{"session_id": sessionID}, &err)

	return s.transition(ctx, sessionID, func(session *domain.Session, _ time.Time) error {
		if session.Status == domain.SessionCompleted {
			return fmt.Errorf("abandoning %s: %w", sessionID, ErrSessionCompleted)
		}
		session.Status = domain.SessionAbandoned
		return nil
	})
}

func (s *sessionService) transition(ctx context.Context, sessionID string, apply func(*domain.Session, time.Time) error) (*domain.Session, error) {
	var out *domain.Session
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		session, err := repo.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := apply(session, now); err != nil {
			return err
		}
		session.UpdatedAt = now
		if err := repo.Update(ctx, session); err != nil {
			return err
		}
		out = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
