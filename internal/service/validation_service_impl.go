package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

type validationService struct {
	sessions SessionService
	observer UseCaseObserver
}

func NewValidationService(sessions SessionService, observers ...UseCaseObserver) ValidationService {
	return &validationService{sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

func (s *validationService) ValidateSession(ctx context.Context, sessionID string) (report *analysis.PlanReport, err error) {
	fields := map[string]any{"session_id": sessionID}
	defer observe(ctx, s.observer, "validate-session", time.Now(), fields, &err)

	dc, err := s.sessions.Context(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	history, err := s.sessions.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	r := s.ValidateContext(dc, history)
	fields["readiness"] = r.Readiness.Score
	fields["should_proceed"] = r.ShouldProceed
	return &r, nil
}

func (s *validationService) ValidateContext(dc domain.DerivedContext, history []domain.AnswerEntry) analysis.PlanReport {
	return analysis.Validate(analysis.PlanInput{Context: dc, History: history})
}
