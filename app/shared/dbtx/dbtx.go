package dbtx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Run executes fn inside a transaction. With a nil db (unit tests backed by
// fake repositories) fn runs directly with a nil handle, and repositories fall
// back to their own connection.
func Run(ctx context.Context, db *bun.DB, fn func(ctx context.Context, tx bun.IDB) error) error {
	if db == nil {
		return fn(ctx, nil)
	}
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// fielder is satisfied by pgdriver.Error.
type fielder interface {
	Field(k byte) string
}

var _ fielder = pgdriver.Error{}

// SQLState returns the SQLSTATE code carried by err, or "".
func SQLState(err error) string {
	var pgErr fielder
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// IsUniqueViolation reports whether err is a duplicate key error.
func IsUniqueViolation(err error) bool {
	return SQLState(err) == sqlStateUniqueViolation
}

// IsForeignKeyViolation reports whether err references a missing row.
func IsForeignKeyViolation(err error) bool {
	return SQLState(err) == sqlStateForeignKeyViolation
}
