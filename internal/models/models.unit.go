// FilePath: internal/models/models.unit.go
package models

import "time"

const (
	UnitNameMaxLen     = 255
	UnitLocationMaxLen = 500
)

// Unit represents a physical facility or location that owns sensors.
type Unit struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Location    string    `json:"location" db:"location"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// UnitCreate carries the fields required to create a unit.
type UnitCreate struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}

// UnitUpdate carries a partial update. Only non-nil fields are applied;
// an update with no fields set is a no-op that returns the current state.
type UnitUpdate struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Empty reports whether no fields were supplied.
func (u *UnitUpdate) Empty() bool {
	return u.Name == nil && u.Location == nil && u.Description == nil
}

// Validate checks the creation payload against the length constraints.
func (u *UnitCreate) Validate() error {
	if l := len(u.Name); l < 1 || l > UnitNameMaxLen {
		return errFieldLength("name", 1, UnitNameMaxLen)
	}
	if l := len(u.Location); l < 1 || l > UnitLocationMaxLen {
		return errFieldLength("location", 1, UnitLocationMaxLen)
	}
	return nil
}

// Validate checks the supplied fields of a partial update.
func (u *UnitUpdate) Validate() error {
	if u.Name != nil {
		if l := len(*u.Name); l < 1 || l > UnitNameMaxLen {
			return errFieldLength("name", 1, UnitNameMaxLen)
		}
	}
	if u.Location != nil {
		if l := len(*u.Location); l < 1 || l > UnitLocationMaxLen {
			return errFieldLength("location", 1, UnitLocationMaxLen)
		}
	}
	return nil
}

// UnitStatistics is the aggregate view over a unit's sensors and their data.
// A unit with zero sensors yields zero counts and a nil timestamp.
type UnitStatistics struct {
	UnitID              int64      `json:"unit_id" db:"unit_id"`
	UnitName            string     `json:"unit_name" db:"unit_name"`
	TotalSensors        int        `json:"total_sensors" db:"total_sensors"`
	ActiveSensors       int        `json:"active_sensors" db:"active_sensors"`
	InactiveSensors     int        `json:"inactive_sensors" db:"inactive_sensors"`
	TotalDataPoints     int        `json:"total_data_points" db:"total_data_points"`
	LatestDataTimestamp *time.Time `json:"latest_data_timestamp" db:"latest_data_timestamp"`
}
