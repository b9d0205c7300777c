package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mvpcoach/internal/db"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// SQLiteSessionRepo stores wizard sessions.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, project_name, experience, status, created_at, updated_at, completed_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO wizard_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectName,
		string(s.Experience),
		string(s.Status),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
		nullableTimeToString(s.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM wizard_sessions WHERE id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ResolveID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("empty session id: %w", ErrNotFound)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM wizard_sessions WHERE id LIKE ? || '%' ORDER BY id LIMIT 2`, prefix)
	if err != nil {
		return "", fmt.Errorf("resolving session id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning session id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating session ids: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("session %s: %w", prefix, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("session %s: %w", prefix, ErrAmbiguousID)
	}
}

// List returns sessions most recently updated first. Completed and
// abandoned sessions are included only when includeClosed is set.
func (r *SQLiteSessionRepo) List(ctx context.Context, includeClosed bool) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM wizard_sessions`
	if !includeClosed {
		query += ` WHERE status = 'in_progress'`
	}
	query += ` ORDER BY updated_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE wizard_sessions
		SET project_name = ?, experience = ?, status = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.ProjectName,
		string(s.Experience),
		string(s.Status),
		formatTime(s.UpdatedAt),
		nullableTimeToString(s.CompletedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return requireOneRow(res, s.ID)
}

func (r *SQLiteSessionRepo) Touch(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE wizard_sessions SET updated_at = ? WHERE id = ?`, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	return requireOneRow(res, id)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return requireOneRow(res, id)
}

func requireOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var experience, status, createdAt, updatedAt string
	var completedAt sql.NullString

	if err := row.Scan(&s.ID, &s.ProjectName, &experience, &status, &createdAt, &updatedAt, &completedAt); err != nil {
		return nil, err
	}

	s.Experience = domain.ExperienceLevel(experience)
	s.Status = domain.SessionStatus(status)
	s.CompletedAt = parseNullableTime(completedAt)

	var err error
	if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
