package service

import (
	"github.com/itsatony/sensormgmt/internal/cleanup"
	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/repository"
)

// Service owns the business rules for the unit/sensor/sensor-data hierarchy
// and holds all repository dependencies
type Service struct {
	Units      repository.UnitRepository
	Sensors    repository.SensorRepository
	SensorData repository.SensorDataRepository
	Cleanup    *cleanup.CleanupService
}

// New creates a new Service instance
func New(
	units repository.UnitRepository,
	sensors repository.SensorRepository,
	sensorData repository.SensorDataRepository,
) *Service {
	svc := &Service{
		Units:      units,
		Sensors:    sensors,
		SensorData: sensorData,
	}
	svc.Cleanup = cleanup.New(units, sensors, sensorData)
	return svc
}

// Validate checks if all required repositories are initialized
func (s *Service) Validate() error {
	if s.Units == nil {
		return ErrMissingRepository("units")
	}
	if s.Sensors == nil {
		return ErrMissingRepository("sensors")
	}
	if s.SensorData == nil {
		return ErrMissingRepository("sensorData")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}
