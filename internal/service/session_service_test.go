package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/alexanderramin/mvpcoach/internal/repository"
	"github.com/alexanderramin/mvpcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Start(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	s, err := svc.Start(ctx, "  Listly ", "")
	require.NoError(t, err)
	assert.Equal(t, "Listly", s.ProjectName)
	assert.Equal(t, domain.ExperienceIntermediate, s.Experience)
	assert.Equal(t, domain.SessionInProgress, s.Status)

	got, err := svc.Get(ctx, s.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
}

func TestSessionService_StartRejectsUnknownExperience(t *testing.T) {
	svc, _ := newTestSessionService(t)
	_, err := svc.Start(context.Background(), "x", domain.ExperienceLevel("wizard"))
	assert.Error(t, err)
}

func TestSessionService_RecordAnswerAssignsSeqAndType(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()
	s, err := svc.Start(ctx, "", domain.ExperienceBeginner)
	require.NoError(t, err)

	nameQ, _ := questions.ByID(questions.IDProjectName)
	techQ, _ := questions.ByID(questions.IDTechStack)

	first, err := svc.RecordAnswer(ctx, s.ID, nameQ, "Listly")
	require.NoError(t, err)
	second, err := svc.RecordAnswer(ctx, s.ID, techQ, "Rails, Postgres")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.Equal(t, domain.QuestionTechStack, second.QuestionType)

	renamed, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Listly", renamed.ProjectName)
}

func TestSessionService_ContextReplaysInOrder(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()
	s, err := svc.Start(ctx, "Listly", domain.ExperienceExpert)
	require.NoError(t, err)

	timeline, _ := questions.ByID(questions.IDTimeline)
	for _, a := range []string{"12 weeks", "6 weeks"} {
		_, err := svc.RecordAnswer(ctx, s.ID, timeline, a)
		require.NoError(t, err)
	}

	dc, err := svc.Context(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, dc.TimelineWeeks)
	assert.Equal(t, "Listly", dc.ProjectName)
	assert.Equal(t, domain.ExperienceExpert, dc.Experience)

	history, err := svc.History(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "12 weeks", history[0].AnswerText)
}

func TestSessionService_NextQuestion(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()
	s, err := svc.Start(ctx, "Listly", "")
	require.NoError(t, err)

	q, ok, err := svc.NextQuestion(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, questions.IDProjectName, q.ID)

	answerScript(t, svc, s.ID, testutil.ReadyAnswers())

	_, ok, err = svc.NextQuestion(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionService_CompletedSessionRejectsAnswers(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()
	s, err := svc.Start(ctx, "Listly", "")
	require.NoError(t, err)

	done, err := svc.Complete(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	q, _ := questions.ByID(questions.IDProblem)
	_, err = svc.RecordAnswer(ctx, s.ID, q, "anything")
	assert.ErrorIs(t, err, ErrSessionCompleted)

	_, err = svc.Abandon(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionCompleted)

	again, err := svc.Complete(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, done.CompletedAt.Equal(*again.CompletedAt))
}

func TestSessionService_AbandonedSessionReopensOnAnswer(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()
	s, err := svc.Start(ctx, "Listly", "")
	require.NoError(t, err)

	abandoned, err := svc.Abandon(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionAbandoned, abandoned.Status)

	open, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, open)

	q, _ := questions.ByID(questions.IDProblem)
	_, err = svc.RecordAnswer(ctx, s.ID, q, "Lists get lost")
	require.NoError(t, err)

	got, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionInProgress, got.Status)
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	q, _ := questions.ByID(questions.IDProblem)
	_, err := svc.RecordAnswer(ctx, "missing", q, "x")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Context(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionService_RecordAnswerRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	plain := newSessionServiceWithUoW(database, testutil.NewTestUoW(database))
	s, err := plain.Start(ctx, "Listly", "")
	require.NoError(t, err)

	// The answer insert succeeds, the session update after it fails.
	uow := &testutil.FailingUoW{
		DB:    database,
		Match: "UPDATE wizard_sessions",
		Err:   errors.New("injected session update failure"),
	}
	failing := newSessionServiceWithUoW(database, uow)

	q, _ := questions.ByID(questions.IDProblem)
	_, err = failing.RecordAnswer(ctx, s.ID, q, "Lists get lost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected session update failure")
	assert.Equal(t, 1, uow.Hits)
	assert.Equal(t, 0, testutil.CountRows(t, database, "answers"))

	history, err := plain.History(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSessionService_ReportsUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc, _ := newTestSessionService(t, obs)
	ctx := context.Background()

	s, err := svc.Start(ctx, "Listly", "")
	require.NoError(t, err)
	q, _ := questions.ByID(questions.IDProblem)
	_, err = svc.RecordAnswer(ctx, s.ID, q, "x")
	require.NoError(t, err)
	_, err = svc.Complete(ctx, s.ID)
	require.NoError(t, err)
	_, err = svc.RecordAnswer(ctx, s.ID, q, "y")
	require.Error(t, err)

	assert.Equal(t, []string{"start-session", "record-answer", "complete-session", "record-answer"}, obs.names())
	assert.True(t, obs.events[1].Success)
	assert.Equal(t, 1, obs.events[1].Fields["seq"])
	assert.False(t, obs.events[3].Success)
	assert.ErrorIs(t, obs.events[3].Err, ErrSessionCompleted)
}
