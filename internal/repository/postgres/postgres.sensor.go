// FilePath: internal/repository/postgres/postgres.sensor.go
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

type SensorRepo struct {
	PostgresBaseRepo
}

func NewSensorRepository(db database.DB) *SensorRepo {
	repo := &PostgresBaseRepo{db: db}
	return &SensorRepo{PostgresBaseRepo: *repo}
}

const sensorColumns = `id, name, sensor_type, unit_id, status, description, created_at`

func (r *SensorRepo) Create(ctx context.Context, create *models.SensorCreate) (*models.Sensor, error) {
	sensor := &models.Sensor{}
	query := `
		INSERT INTO sensors (name, sensor_type, unit_id, status, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + sensorColumns

	err := r.db.GetDB().GetContext(ctx, sensor, query,
		create.Name, create.SensorType, create.UnitID, create.Status, create.Description)
	if err != nil {
		return nil, wrapStoreError("failed to create sensor", err)
	}
	return sensor, nil
}

func (r *SensorRepo) Get(ctx context.Context, id int64) (*models.Sensor, error) {
	sensor := &models.Sensor{}
	query := `SELECT ` + sensorColumns + ` FROM sensors WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, sensor, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("Sensor", id)
		}
		return nil, wrapStoreError("failed to get sensor", err)
	}
	return sensor, nil
}

func (r *SensorRepo) List(ctx context.Context, skip, limit int) ([]*models.Sensor, error) {
	sensors := []*models.Sensor{}
	query := `SELECT ` + sensorColumns + ` FROM sensors ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	err := r.db.GetDB().SelectContext(ctx, &sensors, query, limit, skip)
	if err != nil {
		return nil, wrapStoreError("failed to list sensors", err)
	}
	return sensors, nil
}

func (r *SensorRepo) ListByUnit(ctx context.Context, unitID int64, skip, limit int) ([]*models.Sensor, error) {
	sensors := []*models.Sensor{}
	query := `SELECT ` + sensorColumns + ` FROM sensors WHERE unit_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	err := r.db.GetDB().SelectContext(ctx, &sensors, query, unitID, limit, skip)
	if err != nil {
		return nil, wrapStoreError("failed to list sensors by unit", err)
	}
	return sensors, nil
}

// Update applies only the supplied fields; see UnitRepo.Update for the
// contract. unit_id may be re-pointed here, legality of the new parent is
// the service's concern.
func (r *SensorRepo) Update(ctx context.Context, id int64, update *models.SensorUpdate) (*models.Sensor, error) {
	if update.Empty() {
		return r.Get(ctx, id)
	}

	setClauses := []string{}
	args := []interface{}{}
	param := 1

	if update.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", param))
		args = append(args, *update.Name)
		param++
	}
	if update.SensorType != nil {
		setClauses = append(setClauses, fmt.Sprintf("sensor_type = $%d", param))
		args = append(args, *update.SensorType)
		param++
	}
	if update.UnitID != nil {
		setClauses = append(setClauses, fmt.Sprintf("unit_id = $%d", param))
		args = append(args, *update.UnitID)
		param++
	}
	if update.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", param))
		args = append(args, *update.Status)
		param++
	}
	if update.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", param))
		args = append(args, *update.Description)
		param++
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE sensors SET %s WHERE id = $%d RETURNING `+sensorColumns,
		strings.Join(setClauses, ", "), param,
	)

	sensor := &models.Sensor{}
	err := r.db.GetDB().GetContext(ctx, sensor, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("Sensor", id)
		}
		return nil, wrapStoreError("failed to update sensor", err)
	}
	return sensor, nil
}

func (r *SensorRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM sensors WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return wrapStoreError("failed to delete sensor", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrapStoreError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewResourceNotFoundError("Sensor", id)
	}
	return nil
}

func (r *SensorRepo) DeleteInTx(ctx context.Context, id int64, tx database.Transaction) error {
	query := `DELETE FROM sensors WHERE id = $1`

	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return wrapStoreError("failed to delete sensor", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrapStoreError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewResourceNotFoundError("Sensor", id)
	}
	return nil
}

func (r *SensorRepo) DeleteByUnit(ctx context.Context, unitID int64, tx database.Transaction) (int64, error) {
	query := `DELETE FROM sensors WHERE unit_id = $1`

	result, err := tx.ExecContext(ctx, query, unitID)
	if err != nil {
		return 0, wrapStoreError("failed to delete sensors by unit", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, wrapStoreError("failed to get rows affected", err)
	}

	nuts.L.Infof("[SensorRepo] Deleted %d sensors for unit %d", rows, unitID)
	return rows, nil
}
