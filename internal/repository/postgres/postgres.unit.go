// FilePath: internal/repository/postgres/postgres.unit.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/itsatony/sensormgmt/internal/database"
	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/models"
)

type UnitRepo struct {
	PostgresBaseRepo
}

func NewUnitRepository(db database.DB) *UnitRepo {
	repo := &PostgresBaseRepo{db: db}
	return &UnitRepo{PostgresBaseRepo: *repo}
}

const unitColumns = `id, name, location, description, created_at`

func (r *UnitRepo) Create(ctx context.Context, create *models.UnitCreate) (*models.Unit, error) {
	unit := &models.Unit{}
	query := `
		INSERT INTO units (name, location, description)
		VALUES ($1, $2, $3)
		RETURNING ` + unitColumns

	err := r.db.GetDB().GetContext(ctx, unit, query, create.Name, create.Location, create.Description)
	if err != nil {
		return nil, wrapStoreError("failed to create unit", err)
	}
	return unit, nil
}

func (r *UnitRepo) Get(ctx context.Context, id int64) (*models.Unit, error) {
	unit := &models.Unit{}
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, unit, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("Unit", id)
		}
		return nil, wrapStoreError("failed to get unit", err)
	}
	return unit, nil
}

func (r *UnitRepo) List(ctx context.Context, skip, limit int) ([]*models.Unit, error) {
	units := []*models.Unit{}
	query := `SELECT ` + unitColumns + ` FROM units ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	err := r.db.GetDB().SelectContext(ctx, &units, query, limit, skip)
	if err != nil {
		return nil, wrapStoreError("failed to list units", err)
	}
	return units, nil
}

// Update applies only the supplied fields. The SET clause is assembled from
// the present fields with every value bound as a parameter; an update with
// no fields returns the current row unchanged.
func (r *UnitRepo) Update(ctx context.Context, id int64, update *models.UnitUpdate) (*models.Unit, error) {
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
	if update.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", param))
		args = append(args, *update.Location)
		param++
	}
	if update.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", param))
		args = append(args, *update.Description)
		param++
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE units SET %s WHERE id = $%d RETURNING `+unitColumns,
		strings.Join(setClauses, ", "), param,
	)

	unit := &models.Unit{}
	err := r.db.GetDB().GetContext(ctx, unit, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("Unit", id)
		}
		return nil, wrapStoreError("failed to update unit", err)
	}
	return unit, nil
}

func (r *UnitRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM units WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return wrapStoreError("failed to delete unit", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrapStoreError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewResourceNotFoundError("Unit", id)
	}
	return nil
}

func (r *UnitRepo) DeleteInTx(ctx context.Context, id int64, tx database.Transaction) error {
	query := `DELETE FROM units WHERE id = $1`

	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return wrapStoreError("failed to delete unit", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return wrapStoreError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewResourceNotFoundError("Unit", id)
	}
	return nil
}

// GetStatistics aggregates over the unit's sensors and their readings. The
// outer joins keep a unit with zero sensors at zero counts instead of
// dropping the row.
func (r *UnitRepo) GetStatistics(ctx context.Context, id int64) (*models.UnitStatistics, error) {
	stats := &models.UnitStatistics{}
	query := `
		SELECT
			u.id AS unit_id,
			u.name AS unit_name,
			COUNT(DISTINCT s.id) AS total_sensors,
			COUNT(DISTINCT CASE WHEN s.status = 'active' THEN s.id END) AS active_sensors,
			COUNT(DISTINCT CASE WHEN s.status = 'inactive' THEN s.id END) AS inactive_sensors,
			COUNT(sd.id) AS total_data_points,
			MAX(sd.timestamp) AS latest_data_timestamp
		FROM units u
		LEFT JOIN sensors s ON s.unit_id = u.id
		LEFT JOIN sensor_data sd ON sd.sensor_id = s.id
		WHERE u.id = $1
		GROUP BY u.id, u.name`

	err := r.db.GetDB().GetContext(ctx, stats, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewResourceNotFoundError("Unit", id)
		}
		return nil, wrapStoreError("failed to get unit statistics", err)
	}
	return stats, nil
}
