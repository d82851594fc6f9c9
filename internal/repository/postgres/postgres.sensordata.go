// FilePath: internal/repository/postgres/postgres.sensordata.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/itsatony/sensormgmt/internal/database"
	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

type SensorDataRepo struct {
	PostgresBaseRepo
}

func NewSensorDataRepository(db database.DB) *SensorDataRepo {
	repo := &PostgresBaseRepo{db: db}
	return &SensorDataRepo{PostgresBaseRepo: *repo}
}

const sensorDataColumns = `id, sensor_id, value, unit, status, timestamp`

func (r *SensorDataRepo) Create(ctx context.Context, create *models.SensorDataCreate) (*models.SensorData, error) {
	data := &models.SensorData{}
	query := `
		INSERT INTO sensor_data (sensor_id, value, unit, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + sensorDataColumns

	err := r.db.GetDB().GetContext(ctx, data, query,
		create.SensorID, *create.Value, create.Unit, create.Status)
	if err != nil {
		return nil, wrapStoreError("failed to create sensor data", err)
	}
	return data, nil
}

func (r *SensorDataRepo) Get(ctx context.Context, id int64) (*models.SensorData, error) {
	data := &models.SensorData{}
	query := `SELECT ` + sensorDataColumns + ` FROM sensor_data WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, data, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("SensorData", id)
		}
		return nil, wrapStoreError("failed to get sensor data", err)
	}
	return data, nil
}

func (r *SensorDataRepo) List(ctx context.Context, skip, limit int) ([]*models.SensorData, error) {
	data := []*models.SensorData{}
	query := `SELECT ` + sensorDataColumns + ` FROM sensor_data ORDER BY timestamp DESC LIMIT $1 OFFSET $2`

	err := r.db.GetDB().SelectContext(ctx, &data, query, limit, skip)
	if err != nil {
		return nil, wrapStoreError("failed to list sensor data", err)
	}
	return data, nil
}

func (r *SensorDataRepo) ListBySensor(ctx context.Context, sensorID int64, skip, limit int) ([]*models.SensorData, error) {
	data := []*models.SensorData{}
	query := `SELECT ` + sensorDataColumns + ` FROM sensor_data WHERE sensor_id = $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3`

	err := r.db.GetDB().SelectContext(ctx, &data, query, sensorID, limit, skip)
	if err != nil {
		return nil, wrapStoreError("failed to list sensor data by sensor", err)
	}
	return data, nil
}

func (r *SensorDataRepo) ListByStatus(ctx context.Context, status models.DataStatus, skip, limit int) ([]*models.SensorData, error) {
	data := []*models.SensorData{}
	query := `SELECT ` + sensorDataColumns + ` FROM sensor_data WHERE status = $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3`

	err := r.db.GetDB().SelectContext(ctx, &data, query, status, limit, skip)
	if err != nil {
		return nil, wrapStoreError("failed to list sensor data by status", err)
	}
	return data, nil
}

// ListWithDetails returns readings joined with their owning sensor and unit.
func (r *SensorDataRepo) ListWithDetails(ctx context.Context, skip, limit int) ([]*models.SensorDataWithDetails, error) {
	data := []*models.SensorDataWithDetails{}
	query := `
		SELECT
			sd.id, sd.sensor_id, sd.value, sd.unit, sd.status, sd.timestamp,
			s.name AS sensor_name,
			s.sensor_type AS sensor_type,
			u.name AS unit_name
		FROM sensor_data sd
		JOIN sensors s ON sd.sensor_id = s.id
		JOIN units u ON s.unit_id = u.id
		ORDER BY sd.timestamp DESC
		LIMIT $1 OFFSET $2`

	err := r.db.GetDB().SelectContext(ctx, &data, query, limit, skip)
	if err != nil {
		return nil, wrapStoreError("failed to list sensor data with details", err)
	}
	return data, nil
}

// Update applies only the supplied fields; sensor_id and timestamp are
// immutable and never part of the SET clause.
func (r *SensorDataRepo) Update(ctx context.Context, id int64, update *models.SensorDataUpdate) (*models.SensorData, error) {
	if update.Empty() {
		return r.Get(ctx, id)
	}

	setClauses := []string{}
	args := []interface{}{}
	param := 1

	if update.Value != nil {
		setClauses = append(setClauses, fmt.Sprintf("value = $%d", param))
		args = append(args, *update.Value)
		param++
	}
	if update.Unit != nil {
		setClauses = append(setClauses, fmt.Sprintf("unit = $%d", param))
		args = append(args, *update.Unit)
		param++
	}
	if update.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", param))
		args = append(args, *update.Status)
		param++
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE sensor_data SET %s WHERE id = $%d RETURNING `+sensorDataColumns,
		strings.Join(setClauses, ", "), param,
	)

	data := &models.SensorData{}
	err := r.db.GetDB().GetContext(ctx, data, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("SensorData", id)
		}
		return nil, wrapStoreError("failed to update sensor data", err)
	}
	return data, nil
}

// SetStatus is the write half of the validate/archive transitions. The
// from-state precondition is checked by the service.
func (r *SensorDataRepo) SetStatus(ctx context.Context, id int64, status models.DataStatus) (*models.SensorData, error) {
	data := &models.SensorData{}
	query := `UPDATE sensor_data SET status = $1 WHERE id = $2 RETURNING ` + sensorDataColumns

	err := r.db.GetDB().GetContext(ctx, data, query, status, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("SensorData", id)
		}
		return nil, wrapStoreError("failed to set sensor data status", err)
	}
	return data, nil
}

func (r *SensorDataRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM sensor_data WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return wrapStoreError("failed to delete sensor data", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrapStoreError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewResourceNotFoundError("SensorData", id)
	}
	return nil
}

func (r *SensorDataRepo) DeleteBySensor(ctx context.Context, sensorID int64, tx database.Transaction) (int64, error) {
	query := `DELETE FROM sensor_data WHERE sensor_id = $1`

	result, err := tx.ExecContext(ctx, query, sensorID)
	if err != nil {
		return 0, wrapStoreError("failed to delete sensor data by sensor", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, wrapStoreError("failed to get rows affected", err)
	}

	nuts.L.Infof("[SensorDataRepo] Deleted %d readings for sensor %d", rows, sensorID)
	return rows, nil
}

func (r *SensorDataRepo) DeleteByUnit(ctx context.Context, unitID int64, tx database.Transaction) (int64, error) {
	query := `
		DELETE FROM sensor_data
		WHERE sensor_id IN (SELECT id FROM sensors WHERE unit_id = $1)`

	result, err := tx.ExecContext(ctx, query, unitID)
	if err != nil {
		return 0, wrapStoreError("failed to delete sensor data by unit", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, wrapStoreError("failed to get rows affected", err)
	}

	nuts.L.Infof("[SensorDataRepo] Deleted %d readings for unit %d", rows, unitID)
	return rows, nil
}
