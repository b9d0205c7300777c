package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/db"
)

// FailingUoW runs callbacks in a real transaction but makes every write whose
// SQL contains Match return Err. Reads are never intercepted.
type FailingUoW struct {
	DB    *sql.DB
	Match string
	Err   error

	// Hits counts the writes that were failed.
	Hits int
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failingTx{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow *FailingUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.uow.Match) {
		f.uow.Hits++
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
