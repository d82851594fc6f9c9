// FilePath: internal/repository/postgres/postgres.baserepo.go
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	stderrors "errors"

	"github.com/itsatony/sensormgmt/internal/database"
	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/lib/pq"
)

type PostgresBaseRepo struct {
	db database.DB
}

func (r *PostgresBaseRepo) BeginTx(ctx context.Context) (database.Transaction, error) {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, wrapStoreError("failed to begin transaction", err)
	}
	return tx, nil
}

func (r *PostgresBaseRepo) Ping(ctx context.Context) error {
	if err := r.db.GetDB().PingContext(ctx); err != nil {
		return errors.NewUnavailableError("failed to ping database", err)
	}
	return nil
}

// wrapStoreError classifies a low-level store error without interpreting
// business meaning. Integrity violations with a known cause become conflicts,
// connectivity failures become service-unavailable, everything else is a
// plain database error.
func wrapStoreError(msg string, err error) *errors.APIError {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return errors.NewConflictError("operation violates a foreign key constraint", err)
		case "23505": // unique_violation
			return errors.NewConflictError("operation violates a uniqueness constraint", err)
		}
		if pqErr.Code.Class() == "08" { // connection exceptions
			return errors.NewUnavailableError("database connection failure", err)
		}
	}
	if stderrors.Is(err, driver.ErrBadConn) || stderrors.Is(err, sql.ErrConnDone) {
		return errors.NewUnavailableError("database connection failure", err)
	}
	return errors.NewDatabaseError(msg, err)
}
