// FilePath: internal/repository/postgres/postgres.sensor_test.go
package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sensorCols = []string{"id", "name", "sensor_type", "unit_id", "status", "description", "created_at"}

func TestSensorCreate(t *testing.T) {
	mock, db, closeFn := setupMockDB(t)
	defer closeFn()
	repo := NewSensorRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(sensorCols).
		AddRow(1, "temp-01", "temperature", 1, "active", nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sensors (name, sensor_type, unit_id, status, description)")).
		WithArgs("temp-01", "temperature", int64(1), "active", nil).
		WillReturnRows(rows)

	sensor, err := repo.Create(context.Background(), &models.SensorCreate{
		Name:       "temp-01",
		SensorType: models.Temperature,
		UnitID:     1,
		Status:     models.SensorActive,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), sensor.ID)
	assert.Equal(t, models.Temperature, sensor.SensorType)
	assert.Equal(t, models.SensorActive, sensor.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSensorGetNotFound(t *testing.T) {
	mock, db, closeFn := setupMockDB(t)
	defer closeFn()
	repo := NewSensorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sensors WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(sensorCols))

	sensor, err := repo.Get(context.Background(), 7)

	require.Error(t, err)
	assert.Nil(t, sensor)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Sensor with id 7 not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSensorListByUnit(t *testing.T) {
	mock, db, closeFn := setupMockDB(t)
	defer closeFn()
	repo := NewSensorRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(sensorCols).
		AddRow(2, "hum-01", "humidity", 1, "active", nil, now).
		AddRow(1, "temp-01", "temperature", 1, "inactive", nil, now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("FROM sensors WHERE unit_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3")).
		WithArgs(int64(1), 100, 0).
		WillReturnRows(rows)

	sensors, err := repo.ListByUnit(context.Background(), 1, 0, 100)

	require.NoError(t, err)
	require.Len(t, sensors, 2)
	assert.Equal(t, models.Humidity, sensors[0].SensorType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSensorUpdateReparent(t *testing.T) {
	mock, db, closeFn := setupMockDB(t)
	defer closeFn()
	repo := NewSensorRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(sensorCols).
		AddRow(1, "temp-01", "temperature", 2, "active", nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE sensors SET unit_id = $1 WHERE id = $2 RETURNING")).
		WithArgs(int64(2), int64(1)).
		WillReturnRows(rows)

	sensor, err := repo.Update(context.Background(), 1, &models.SensorUpdate{
		UnitID: int64Ptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), sensor.UnitID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSensorUpdateMultipleFields(t *testing.T) {
	mock, db, closeFn := setupMockDB(t)
	defer closeFn()
	repo := NewSensorRepository(db)

	now := time.Now()
	status := models.SensorMaintenance
	rows := sqlmock.NewRows(sensorCols).
		AddRow(1, "temp-main", "temperature", 1, "maintenance", nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE sensors SET name = $1, status = $2 WHERE id = $3 RETURNING")).
		WithArgs("temp-main", "maintenance", int64(1)).
		WillReturnRows(rows)

	sensor, err := repo.Update(context.Background(), 1, &models.SensorUpdate{
		Name:   strPtr("temp-main"),
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, models.SensorMaintenance, sensor.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSensorDeleteByUnitInTx(t *testing.T) {
	mock, db, closeFn := setupMockDB(t)
	defer closeFn()
	repo := NewSensorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sensors WHERE unit_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)

	rows, err := repo.DeleteByUnit(context.Background(), 1, tx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rows)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
