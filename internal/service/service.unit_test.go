// FilePath: internal/service/service.unit_test.go
package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUnitChecksExistenceFirst(t *testing.T) {
	mock, svc, closeFn := setupService(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(unitCols))

	unit, err := svc.UpdateUnit(context.Background(), 42, &models.UnitUpdate{
		Name: strPtr("renamed"),
	})

	require.Error(t, err)
	assert.Nil(t, unit)
	assert.True(t, errors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUnitNoFieldsReturnsCurrent(t *testing.T) {
	mock, svc, closeFn := setupService(t)
	defer closeFn()

	// existence check, then the no-op re-read; no UPDATE is issued
	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(unitRow(1, "Warehouse A"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(unitRow(1, "Warehouse A"))

	unit, err := svc.UpdateUnit(context.Background(), 1, &models.UnitUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "Warehouse A", unit.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnitCascades(t *testing.T) {
	mock, svc, closeFn := setupService(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(unitRow(1, "Warehouse A"))

	// bottom-up within one transaction: readings, sensors, then the unit
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("WHERE sensor_id IN (SELECT id FROM sensors WHERE unit_id = $1)")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sensors WHERE unit_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.DeleteUnit(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnitNotFound(t *testing.T) {
	mock, svc, closeFn := setupService(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(unitCols))

	err := svc.DeleteUnit(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnitRaceSurfacesAsInternal(t *testing.T) {
	mock, svc, closeFn := setupService(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(unitRow(1, "Warehouse A"))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("WHERE sensor_id IN (SELECT id FROM sensors WHERE unit_id = $1)")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sensors WHERE unit_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// concurrent delete won the race; zero rows after a passing existence check
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.DeleteUnit(context.Background(), 1)

	require.Error(t, err)
	apiErr := errors.AsAPIError(err)
	assert.Equal(t, errors.ErrorTypeInternal, apiErr.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnitStatistics(t *testing.T) {
	mock, svc, closeFn := setupService(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(unitRow(1, "Warehouse A"))

	statsRows := sqlmock.NewRows([]string{
		"unit_id", "unit_name", "total_sensors", "active_sensors",
		"inactive_sensors", "total_data_points", "latest_data_timestamp",
	}).AddRow(1, "Warehouse A", 2, 1, 1, 40, nil)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(DISTINCT s.id) AS total_sensors")).
		WithArgs(int64(1)).
		WillReturnRows(statsRows)

	stats, err := svc.GetUnitStatistics(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSensors)
	assert.Nil(t, stats.LatestDataTimestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}
