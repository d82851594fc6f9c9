// FilePath: internal/service/service_test.go
package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/itsatony/sensormgmt/internal/database"
	"github.com/itsatony/sensormgmt/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var (
	unitCols       = []string{"id", "name", "location", "description", "created_at"}
	sensorCols     = []string{"id", "name", "sensor_type", "unit_id", "status", "description", "created_at"}
	sensorDataCols = []string{"id", "sensor_id", "value", "unit", "status", "timestamp"}
)

// setupService builds a Service over real repositories backed by a sqlmock
// connection, so the business rules are exercised together with the SQL
// they issue.
func setupService(t *testing.T) (sqlmock.Sqlmock, *Service, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := database.NewFromSqlx(sqlx.NewDb(mockDB, "sqlmock"))
	svc := New(
		postgres.NewUnitRepository(db),
		postgres.NewSensorRepository(db),
		postgres.NewSensorDataRepository(db),
	)
	require.NoError(t, svc.Validate())

	return mock, svc, func() { mockDB.Close() }
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func unitRow(id int64, name string) *sqlmock.Rows {
	return sqlmock.NewRows(unitCols).AddRow(id, name, "Berlin", nil, time.Now())
}

func sensorRow(id, unitID int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows(sensorCols).AddRow(id, "temp-01", "temperature", unitID, status, nil, time.Now())
}

func sensorDataRow(id, sensorID int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows(sensorDataCols).AddRow(id, sensorID, 21.5, nil, status, time.Now())
}
