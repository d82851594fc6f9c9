package cleanup

import (
	"context"
	"fmt"

	"github.com/itsatony/sensormgmt/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// CleanupService coordinates deletion of hierarchical data. It deletes
// bottom-up (readings, sensors, unit) in a single transaction so the
// existence check and the delete cannot interleave with a concurrent
// delete of the same subtree. The store-level ON DELETE CASCADE covers
// the same ground for out-of-band deletions.
type CleanupService struct {
	units      repository.UnitRepository
	sensors    repository.SensorRepository
	sensorData repository.SensorDataRepository
	events     *nuts.EventEmitter
}

// New creates a new CleanupService
func New(
	units repository.UnitRepository,
	sensors repository.SensorRepository,
	sensorData repository.SensorDataRepository,
) *CleanupService {
	return &CleanupService{
		units:      units,
		sensors:    sensors,
		sensorData: sensorData,
		events:     nuts.NewEventEmitter(),
	}
}

// DeleteUnit deletes a unit together with its sensors and their readings.
func (s *CleanupService) DeleteUnit(ctx context.Context, unitID int64) error {
	tx, err := s.units.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Ignored once the transaction is committed

	dataRows, err := s.sensorData.DeleteByUnit(ctx, unitID, tx)
	if err != nil {
		return err
	}

	sensorRows, err := s.sensors.DeleteByUnit(ctx, unitID, tx)
	if err != nil {
		return err
	}

	if err := s.units.DeleteInTx(ctx, unitID, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if dataRows > 0 {
		s.events.Emit("sensordata.deleted", unitID)
	}
	if sensorRows > 0 {
		s.events.Emit("sensor.deleted", unitID)
	}
	s.events.Emit("unit.deleted", unitID)
	return nil
}

// DeleteSensor deletes a sensor and all its readings.
func (s *CleanupService) DeleteSensor(ctx context.Context, sensorID int64) error {
	tx, err := s.sensors.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dataRows, err := s.sensorData.DeleteBySensor(ctx, sensorID, tx)
	if err != nil {
		return err
	}

	if err := s.sensors.DeleteInTx(ctx, sensorID, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if dataRows > 0 {
		s.events.Emit("sensordata.deleted", sensorID)
	}
	s.events.Emit("sensor.deleted", sensorID)
	return nil
}

// OnCleanup registers a callback for cleanup events
func (s *CleanupService) OnCleanup(event string, handler func(id int64)) {
	s.events.On(event, "cleanup_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(int64); ok {
				handler(id)
			}
		}
	})
}
