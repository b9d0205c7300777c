package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mvpcoach/internal/db"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// SQLiteAnswerRepo stores the ordered answer history of each session.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

func NewSQLiteAnswerRepo(conn db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: conn}
}

// Append allocates seq as max+1 for the session. Run it inside a UnitOfWork
// when several writers may share a session.
func (r *SQLiteAnswerRepo) Append(ctx context.Context, a *domain.AnswerEntry) error {
	var next int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM answers WHERE session_id = ?`, a.SessionID).Scan(&next); err != nil {
		return fmt.Errorf("allocating answer seq: %w", err)
	}

	query := `INSERT INTO answers (id, session_id, seq, question_id, question_text, question_type, answer_text, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.SessionID,
		next,
		a.QuestionID,
		a.QuestionText,
		string(a.QuestionType),
		a.AnswerText,
		formatTime(a.AnsweredAt),
	)
	if err != nil {
		return fmt.Errorf("inserting answer: %w", err)
	}
	a.Seq = next
	return nil
}

// ListBySession returns the answers in seq order.
func (r *SQLiteAnswerRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.AnswerEntry, error) {
	query := `SELECT id, session_id, seq, question_id, question_text, question_type, answer_text, answered_at
		FROM answers WHERE session_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	var out []domain.AnswerEntry
	for rows.Next() {
		var a domain.AnswerEntry
		var questionType, answeredAt string
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Seq, &a.QuestionID, &a.QuestionText, &questionType, &a.AnswerText, &answeredAt); err != nil {
			return nil, fmt.Errorf("scanning answer row: %w", err)
		}
		a.QuestionType = domain.QuestionType(questionType)
		if a.AnsweredAt, err = time.Parse(timeLayout, answeredAt); err != nil {
			return nil, fmt.Errorf("parsing answered_at: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return out, nil
}

func (r *SQLiteAnswerRepo) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers WHERE session_id = ?`, sessionID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting answers: %w", err)
	}
	return n, nil
}
