// FilePath: internal/repository/postgres/postgres_test.go
package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/itsatony/sensormgmt/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupMockDB wires a sqlmock connection behind the database.DB interface so
// repositories under test run their real SQL against recorded expectations.
func setupMockDB(t *testing.T) (sqlmock.Sqlmock, database.DB, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := database.NewFromSqlx(sqlx.NewDb(mockDB, "sqlmock"))
	return mock, db, func() { mockDB.Close() }
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }
