package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are re-run on every open,
// so each one must be idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillAnswerSeq(db); err != nil {
		return fmt.Errorf("backfilling answer seq values: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS wizard_sessions (
		id           TEXT PRIMARY KEY,
		project_name TEXT NOT NULL DEFAULT '',
		experience   TEXT NOT NULL DEFAULT 'intermediate'
		             CHECK(experience IN ('beginner','intermediate','expert')),
		status       TEXT NOT NULL DEFAULT 'in_progress'
		             CHECK(status IN ('in_progress','completed','abandoned')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		completed_at TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_wizard_sessions_status ON wizard_sessions(status)`,
	`CREATE INDEX IF NOT EXISTS idx_wizard_sessions_updated ON wizard_sessions(updated_at)`,

	`CREATE TABLE IF NOT EXISTS answers (
		id            TEXT PRIMARY KEY,
		session_id    TEXT NOT NULL REFERENCES wizard_sessions(id) ON DELETE CASCADE,
		question_id   TEXT NOT NULL DEFAULT '',
		question_text TEXT NOT NULL,
		answer_text   TEXT NOT NULL DEFAULT '',
		answered_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id)`,

	// Answer ordering within a session and the classified question type.
	`ALTER TABLE answers ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE answers ADD COLUMN question_type TEXT NOT NULL DEFAULT 'generic'`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_answers_session_seq ON answers(session_id, seq) WHERE seq > 0`,
}

// migrateBackfillAnswerSeq numbers answers that predate the seq column in
// answered_at order, per session. Idempotent: only rows with seq = 0 change.
func migrateBackfillAnswerSeq(db *sql.DB) error {
	ctx := context.Background()

	var pending int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers WHERE seq = 0`).Scan(&pending); err != nil {
		return fmt.Errorf("checking answers seq: %w", err)
	}
	if pending == 0 {
		return nil
	}

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT session_id FROM answers WHERE seq = 0 ORDER BY session_id`)
	if err != nil {
		return fmt.Errorf("listing sessions for seq backfill: %w", err)
	}
	var sessionIDs []string
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			rows.Close()
			return fmt.Errorf("scanning session id: %w", err)
		}
		sessionIDs = append(sessionIDs, sid)
	}
	rows.Close()

	for _, sid := range sessionIDs {
		if err := backfillSessionSeq(ctx, db, sid); err != nil {
			return fmt.Errorf("backfilling seq for session %s: %w", sid, err)
		}
	}
	return nil
}

func backfillSessionSeq(ctx context.Context, db *sql.DB, sessionID string) error {
	var next int
	if err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM answers WHERE session_id = ?`, sessionID).Scan(&next); err != nil {
		return fmt.Errorf("reading max seq: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id FROM answers WHERE session_id = ? AND seq = 0 ORDER BY answered_at, id`, sessionID)
	if err != nil {
		return fmt.Errorf("listing answers: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	rows.Close()

	for _, id := range ids {
		if _, err := db.ExecContext(ctx, `UPDATE answers SET seq = ? WHERE id = ? AND seq = 0`, next, id); err != nil {
			return fmt.Errorf("updating answer seq: %w", err)
		}
		next++
	}
	return nil
}
