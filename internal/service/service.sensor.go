package service

import (
	"context"

	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateSensor creates a new sensor after resolving its parent unit. A
// missing unit fails not-found before anything is inserted.
func (s *Service) CreateSensor(ctx context.Context, create *models.SensorCreate) (*models.Sensor, error) {
	if _, err := s.Units.Get(ctx, create.UnitID); err != nil {
		return nil, err
	}

	sensor, err := s.Sensors.Create(ctx, create)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[SensorService] Created sensor %d (%s) for unit %d", sensor.ID, sensor.Name, sensor.UnitID)
	return sensor, nil
}

// GetSensor retrieves a sensor by id
func (s *Service) GetSensor(ctx context.Context, id int64) (*models.Sensor, error) {
	return s.Sensors.Get(ctx, id)
}

// ListSensors retrieves a paginated list of sensors, newest first,
// optionally filtered to a single unit
func (s *Service) ListSensors(ctx context.Context, skip, limit int, filters models.SensorFilters) ([]*models.Sensor, error) {
	if filters.UnitID > 0 {
		return s.Sensors.ListByUnit(ctx, filters.UnitID, skip, limit)
	}
	return s.Sensors.List(ctx, skip, limit)
}

// UpdateSensor applies a partial update. Re-parenting to a different unit
// requires the new unit to exist.
func (s *Service) UpdateSensor(ctx context.Context, id int64, update *models.SensorUpdate) (*models.Sensor, error) {
	existing, err := s.Sensors.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.UnitID != nil && *update.UnitID != existing.UnitID {
		if _, err := s.Units.Get(ctx, *update.UnitID); err != nil {
			return nil, err
		}
	}

	sensor, err := s.Sensors.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[SensorService] Updated sensor %d", id)
	return sensor, nil
}

// DeleteSensor removes a sensor, cascading to its readings. Deployments that
// forbid deleting sensors with data see the store's conflict surface as a
// 409 instead.
func (s *Service) DeleteSensor(ctx context.Context, id int64) error {
	if _, err := s.Sensors.Get(ctx, id); err != nil {
		return err
	}

	if err := s.Cleanup.DeleteSensor(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return errors.NewInternalError("sensor delete affected no rows despite existence check", err)
		}
		return err
	}

	nuts.L.Infof("[SensorService] Deleted sensor %d with all readings", id)
	return nil
}
