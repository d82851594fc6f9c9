// FilePath: internal/models/models.sensordata.go
package models

import (
	"fmt"
	"time"
)

type DataStatus string

const (
	DataPending   DataStatus = "pending"
	DataValidated DataStatus = "validated"
	DataArchived  DataStatus = "archived"
	DataInvalid   DataStatus = "invalid"
)

// Valid reports whether the status is one of the closed set.
func (s DataStatus) Valid() bool {
	switch s {
	case DataPending, DataValidated, DataArchived, DataInvalid:
		return true
	}
	return false
}

// SensorData represents a single timestamped reading produced by a sensor.
// Unit is a free-text measurement unit label ("celsius", "hPa"), unrelated
// to the Unit entity.
type SensorData struct {
	ID        int64      `json:"id" db:"id"`
	SensorID  int64      `json:"sensor_id" db:"sensor_id"`
	Value     float64    `json:"value" db:"value"`
	Unit      *string    `json:"unit,omitempty" db:"unit"`
	Status    DataStatus `json:"status" db:"status"`
	Timestamp time.Time  `json:"timestamp" db:"timestamp"`
}

// SensorDataWithDetails joins a reading with its owning sensor and unit.
type SensorDataWithDetails struct {
	SensorData
	SensorName string `json:"sensor_name" db:"sensor_name"`
	SensorType string `json:"sensor_type" db:"sensor_type"`
	UnitName   string `json:"unit_name" db:"unit_name"`
}

// SensorDataCreate carries the fields required to record a reading. The
// sensor referenced by SensorID must exist at creation time. Value is a
// pointer so an absent field is distinguishable from a literal 0.0.
type SensorDataCreate struct {
	SensorID int64      `json:"sensor_id"`
	Value    *float64   `json:"value"`
	Unit     *string    `json:"unit,omitempty"`
	Status   DataStatus `json:"status,omitempty"`
}

// SensorDataUpdate carries a partial update. SensorID and Timestamp are
// immutable after creation and cannot be supplied here.
type SensorDataUpdate struct {
	Value  *float64    `json:"value,omitempty"`
	Unit   *string     `json:"unit,omitempty"`
	Status *DataStatus `json:"status,omitempty"`
}

// Empty reports whether no fields were supplied.
func (u *SensorDataUpdate) Empty() bool {
	return u.Value == nil && u.Unit == nil && u.Status == nil
}

// Validate checks required fields and enum membership; it also applies the
// default status when none was supplied.
func (c *SensorDataCreate) Validate() error {
	if c.SensorID <= 0 {
		return fmt.Errorf("sensor_id must be positive")
	}
	if c.Value == nil {
		return fmt.Errorf("value is required")
	}
	if c.Status == "" {
		c.Status = DataPending
	}
	if !c.Status.Valid() {
		return fmt.Errorf("invalid status %q", c.Status)
	}
	return nil
}

// Validate checks the supplied fields of a partial update. A direct update
// may set any valid status, including "invalid", which is unreachable via
// the named validate/archive transitions.
func (u *SensorDataUpdate) Validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("invalid status %q", *u.Status)
	}
	return nil
}
