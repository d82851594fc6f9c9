// FilePath: internal/models/models.sensor.go
package models

import (
	"fmt"
	"time"
)

type SensorType string

const (
	Temperature SensorType = "temperature"
	Humidity    SensorType = "humidity"
	Pressure    SensorType = "pressure"
	Motion      SensorType = "motion"
	Light       SensorType = "light"
	Sound       SensorType = "sound"
	Other       SensorType = "other"
)

// Valid reports whether the sensor type is one of the closed set.
func (t SensorType) Valid() bool {
	switch t {
	case Temperature, Humidity, Pressure, Motion, Light, Sound, Other:
		return true
	}
	return false
}

type SensorStatus string

const (
	SensorActive      SensorStatus = "active"
	SensorInactive    SensorStatus = "inactive"
	SensorMaintenance SensorStatus = "maintenance"
)

// Valid reports whether the status is one of the closed set. Any valid
// status may follow any other; sensors carry no transition restrictions.
func (s SensorStatus) Valid() bool {
	switch s {
	case SensorActive, SensorInactive, SensorMaintenance:
		return true
	}
	return false
}

// Sensor represents a monitored device belonging to a unit.
type Sensor struct {
	ID          int64        `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	SensorType  SensorType   `json:"sensor_type" db:"sensor_type"`
	UnitID      int64        `json:"unit_id" db:"unit_id"`
	Status      SensorStatus `json:"status" db:"status"`
	Description *string      `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}

// SensorCreate carries the fields required to create a sensor. The unit
// referenced by UnitID must exist at creation time.
type SensorCreate struct {
	Name        string       `json:"name"`
	SensorType  SensorType   `json:"sensor_type"`
	UnitID      int64        `json:"unit_id"`
	Status      SensorStatus `json:"status,omitempty"`
	Description *string      `json:"description,omitempty"`
}

// SensorUpdate carries a partial update. A supplied UnitID re-parents the
// sensor and is only legal when the new unit exists.
type SensorUpdate struct {
	Name        *string       `json:"name,omitempty"`
	SensorType  *SensorType   `json:"sensor_type,omitempty"`
	UnitID      *int64        `json:"unit_id,omitempty"`
	Status      *SensorStatus `json:"status,omitempty"`
	Description *string       `json:"description,omitempty"`
}

// Empty reports whether no fields were supplied.
func (u *SensorUpdate) Empty() bool {
	return u.Name == nil && u.SensorType == nil && u.UnitID == nil &&
		u.Status == nil && u.Description == nil
}

// Validate checks required fields and enum membership; it also applies the
// default status when none was supplied.
func (s *SensorCreate) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !s.SensorType.Valid() {
		return fmt.Errorf("invalid sensor_type %q", s.SensorType)
	}
	if s.UnitID <= 0 {
		return fmt.Errorf("unit_id must be positive")
	}
	if s.Status == "" {
		s.Status = SensorActive
	}
	if !s.Status.Valid() {
		return fmt.Errorf("invalid status %q", s.Status)
	}
	return nil
}

// Validate checks the supplied fields of a partial update.
func (u *SensorUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if u.SensorType != nil && !u.SensorType.Valid() {
		return fmt.Errorf("invalid sensor_type %q", *u.SensorType)
	}
	if u.UnitID != nil && *u.UnitID <= 0 {
		return fmt.Errorf("unit_id must be positive")
	}
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("invalid status %q", *u.Status)
	}
	return nil
}

func errFieldLength(field string, min, max int) error {
	return fmt.Errorf("%s must be between %d and %d characters", field, min, max)
}
