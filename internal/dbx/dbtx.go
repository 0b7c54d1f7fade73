// Package dbx holds the small database plumbing the session repository is
// built on: the DBTX query surface satisfied by both *sql.DB and *sql.Tx,
// and a transaction wrapper.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface repositories operate on. Handing a repository a
// *sql.DB runs its statements directly; handing it a *sql.Tx runs them
// inside a transaction without the repository knowing the difference.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: commit on a nil return, rollback on
// error or panic (the panic is rethrown). The token store uses it to write
// the salt, token and username keys so the slot is never half-updated:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    if err := repo(tx).Set(ctx, "token", sealed); err != nil {
//	        return err
//	    }
//	    return repo(tx).Set(ctx, "username", []byte(username))
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
