package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/mvpcoach/internal/db"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerTestSetup(t *testing.T) (*SQLiteAnswerRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := testutil.NewTestSession("Listly")
	require.NoError(t, NewSQLiteSessionRepo(database).Create(context.Background(), s))
	return NewSQLiteAnswerRepo(database), s.ID
}

func TestAnswerRepo_AppendAssignsSeq(t *testing.T) {
	repo, sid := answerTestSetup(t)
	ctx := context.Background()

	first := testutil.NewTestAnswer(sid, "project_name", "Listly")
	second := testutil.NewTestAnswer(sid, "problem", "Lists get lost")
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)

	got, err := repo.ListBySession(ctx, sid)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "project_name", got[0].QuestionID)
	assert.Equal(t, domain.QuestionProjectName, got[0].QuestionType)
	assert.Equal(t, "Lists get lost", got[1].AnswerText)
	assert.Equal(t, domain.QuestionProblemValidation, got[1].QuestionType)
}

func TestAnswerRepo_SeqIsPerSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	repo := NewSQLiteAnswerRepo(database)
	ctx := context.Background()

	a := testutil.NewTestSession("a")
	b := testutil.NewTestSession("b")
	require.NoError(t, sessions.Create(ctx, a))
	require.NoError(t, sessions.Create(ctx, b))

	require.NoError(t, repo.Append(ctx, testutil.NewTestAnswer(a.ID, "project_name", "A")))
	ans := testutil.NewTestAnswer(b.ID, "project_name", "B")
	require.NoError(t, repo.Append(ctx, ans))

	assert.Equal(t, 1, ans.Seq)
}

func TestAnswerRepo_RequiresSession(t *testing.T) {
	repo := NewSQLiteAnswerRepo(testutil.NewTestDB(t))
	err := repo.Append(context.Background(), testutil.NewTestAnswer("missing", "project_name", "x"))
	assert.Error(t, err)
}

func TestAnswerRepo_ListEmpty(t *testing.T) {
	repo, sid := answerTestSetup(t)

	got, err := repo.ListBySession(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnswerRepo_AppendRollsBackWithTx(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := testutil.NewTestSession("Listly")
	ctx := context.Background()
	require.NoError(t, NewSQLiteSessionRepo(database).Create(ctx, s))

	uow := testutil.NewTestUoW(database)
	boom := errors.New("boom")
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := NewSQLiteAnswerRepo(tx).Append(ctx, testutil.NewTestAnswer(s.ID, "project_name", "x")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := NewSQLiteAnswerRepo(database).CountBySession(ctx, s.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
