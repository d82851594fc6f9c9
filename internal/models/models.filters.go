// FilePath: internal/models/models.filters.go
package models

// SensorFilters defines the available filter options for sensor listings.
// Decoded from the query string via gorilla/schema.
type SensorFilters struct {
	UnitID int64 `json:"unit_id" schema:"unit_id"`
}

// SensorDataFilters defines the available filter options for sensor data
// listings. WithDetails takes precedence over SensorID/Status: the joined
// view is returned unfiltered.
type SensorDataFilters struct {
	SensorID    int64      `json:"sensor_id" schema:"sensor_id"`
	Status      DataStatus `json:"status" schema:"status"`
	WithDetails bool       `json:"with_details" schema:"with_details"`
}
