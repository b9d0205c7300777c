package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/mvpcoach/internal/db"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/alexanderramin/mvpcoach/internal/repository"
	"github.com/alexanderramin/mvpcoach/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

func newTestSessionService(t *testing.T, observers ...UseCaseObserver) (SessionService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newSessionServiceWithUoW(database, testutil.NewTestUoW(database), observers...), database
}

func newSessionServiceWithUoW(database *sql.DB, uow db.UnitOfWork, observers ...UseCaseObserver) SessionService {
	return NewSessionService(
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteAnswerRepo(database),
		uow,
		observers...,
	)
}

// answerScript records answers in script order, skipping IDs not in answers.
func answerScript(t *testing.T, svc SessionService, sessionID string, answers map[string]string) {
	t.Helper()
	ctx := context.Background()
	for _, q := range questions.Script() {
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		_, err := svc.RecordAnswer(ctx, sessionID, q, a)
		require.NoError(t, err, q.ID)
	}
}
