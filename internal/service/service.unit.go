package service

import (
	"context"

	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateUnit creates a new unit. Length constraints are enforced at the
// boundary; nothing here checks a parent because units have none.
func (s *Service) CreateUnit(ctx context.Context, create *models.UnitCreate) (*models.Unit, error) {
	unit, err := s.Units.Create(ctx, create)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[UnitService] Created unit %d (%s)", unit.ID, unit.Name)
	return unit, nil
}

// GetUnit retrieves a unit by id
func (s *Service) GetUnit(ctx context.Context, id int64) (*models.Unit, error) {
	return s.Units.Get(ctx, id)
}

// ListUnits retrieves a paginated list of units, newest first
func (s *Service) ListUnits(ctx context.Context, skip, limit int) ([]*models.Unit, error) {
	return s.Units.List(ctx, skip, limit)
}

// UpdateUnit applies a partial update. An update with no supplied fields is
// a no-op returning the current state.
func (s *Service) UpdateUnit(ctx context.Context, id int64, update *models.UnitUpdate) (*models.Unit, error) {
	if _, err := s.Units.Get(ctx, id); err != nil {
		return nil, err
	}

	unit, err := s.Units.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[UnitService] Updated unit %d", id)
	return unit, nil
}

// DeleteUnit removes a unit and cascades to its sensors and their readings.
// A delete that affects zero rows after the existence check passed indicates
// a race and surfaces as an internal error.
func (s *Service) DeleteUnit(ctx context.Context, id int64) error {
	if _, err := s.Units.Get(ctx, id); err != nil {
		return err
	}

	if err := s.Cleanup.DeleteUnit(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return errors.NewInternalError("unit delete affected no rows despite existence check", err)
		}
		return err
	}

	nuts.L.Infof("[UnitService] Deleted unit %d with all sensors and readings", id)
	return nil
}

// GetUnitStatistics returns the aggregate view over a unit's sensors and
// readings. A unit without sensors yields zero counts and a nil timestamp.
func (s *Service) GetUnitStatistics(ctx context.Context, id int64) (*models.UnitStatistics, error) {
	if _, err := s.Units.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.Units.GetStatistics(ctx, id)
}
