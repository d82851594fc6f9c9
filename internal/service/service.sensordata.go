package service

import (
	"context"
	"fmt"

	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateSensorData records a new reading after resolving its sensor. The
// status defaults to pending when none was supplied.
func (s *Service) CreateSensorData(ctx context.Context, create *models.SensorDataCreate) (*models.SensorData, error) {
	if _, err := s.Sensors.Get(ctx, create.SensorID); err != nil {
		return nil, err
	}

	data, err := s.SensorData.Create(ctx, create)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[SensorDataService] Recorded reading %d for sensor %d", data.ID, data.SensorID)
	return data, nil
}

// GetSensorData retrieves a reading by id
func (s *Service) GetSensorData(ctx context.Context, id int64) (*models.SensorData, error) {
	return s.SensorData.Get(ctx, id)
}

// ListSensorData serves the four listing shapes: plain, by sensor, by
// status, and the joined detail view. WithDetails takes precedence and
// returns the full joined set; it is not intersected with the other filters.
func (s *Service) ListSensorData(ctx context.Context, skip, limit int, filters models.SensorDataFilters) (interface{}, error) {
	if filters.WithDetails {
		return s.SensorData.ListWithDetails(ctx, skip, limit)
	}
	if filters.SensorID > 0 {
		return s.SensorData.ListBySensor(ctx, filters.SensorID, skip, limit)
	}
	if filters.Status != "" {
		return s.SensorData.ListByStatus(ctx, filters.Status, skip, limit)
	}
	return s.SensorData.List(ctx, skip, limit)
}

// UpdateSensorData applies a partial update to value/unit/status. A direct
// update bypasses the transition preconditions and may set any valid status.
func (s *Service) UpdateSensorData(ctx context.Context, id int64, update *models.SensorDataUpdate) (*models.SensorData, error) {
	if _, err := s.SensorData.Get(ctx, id); err != nil {
		return nil, err
	}

	data, err := s.SensorData.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[SensorDataService] Updated reading %d", id)
	return data, nil
}

// ValidateSensorData transitions a reading to validated. Already-validated
// readings and archived readings (terminal) are conflicts.
func (s *Service) ValidateSensorData(ctx context.Context, id int64) (*models.SensorData, error) {
	existing, err := s.SensorData.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch existing.Status {
	case models.DataValidated:
		return nil, errors.NewConflictError(fmt.Sprintf("sensor data %d is already validated", id), nil)
	case models.DataArchived:
		return nil, errors.NewConflictError(fmt.Sprintf("cannot validate archived sensor data %d", id), nil)
	}

	data, err := s.SensorData.SetStatus(ctx, id, models.DataValidated)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[SensorDataService] Validated reading %d", id)
	return data, nil
}

// ArchiveSensorData transitions a reading to archived. Archiving pending or
// invalid data directly, skipping validation, is accepted; re-archiving is
// a conflict.
func (s *Service) ArchiveSensorData(ctx context.Context, id int64) (*models.SensorData, error) {
	existing, err := s.SensorData.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.Status == models.DataArchived {
		return nil, errors.NewConflictError(fmt.Sprintf("sensor data %d is already archived", id), nil)
	}

	data, err := s.SensorData.SetStatus(ctx, id, models.DataArchived)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[SensorDataService] Archived reading %d", id)
	return data, nil
}

// DeleteSensorData removes a single reading
func (s *Service) DeleteSensorData(ctx context.Context, id int64) error {
	if _, err := s.SensorData.Get(ctx, id); err != nil {
		return err
	}

	if err := s.SensorData.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return errors.NewInternalError("sensor data delete affected no rows despite existence check", err)
		}
		return err
	}

	nuts.L.Infof("[SensorDataService] Deleted reading %d", id)
	return nil
}
