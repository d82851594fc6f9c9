// FilePath: api/resources/api.resource.sensors.go
package resources

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/itsatony/sensormgmt/api/middleware"
	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/models"
	"github.com/itsatony/sensormgmt/internal/service"
)

// SensorHandlers encapsulates the sensor-related HTTP handlers
type SensorHandlers struct {
	service *service.Service
}

// @Summary Create a new sensor
// @Description Create a new sensor attached to an existing unit
// @Tags sensors
// @Accept json
// @Produce json
// @Param sensor body models.SensorCreate true "Sensor details"
// @Success 201 {object} models.Sensor
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Failure 422 {object} errors.APIError
// @Router /sensors [post]
func (h *SensorHandlers) CreateSensor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var create models.SensorCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		respondWithError(w, errors.NewBadRequestError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := create.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	sensor, err := h.service.CreateSensor(r.Context(), &create)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, sensor)
}

// @Summary List sensors
// @Description Get a paginated list of sensors, newest first, optionally filtered by unit
// @Tags sensors
// @Produce json
// @Param skip query int false "Number of records to skip"
// @Param limit query int false "Maximum number of records to return (1-100)"
// @Param unit_id query int false "Filter by unit ID"
// @Success 200 {array} models.Sensor
// @Failure 400 {object} errors.APIError
// @Router /sensors [get]
func (h *SensorHandlers) ListSensors(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	skip, limit, apiErr := getPaginationParams(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	var filters models.SensorFilters
	if err := queryDecoder.Decode(&filters, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewBadRequestError("invalid query parameters", err).WithRequestID(requestID))
		return
	}
	if r.URL.Query().Get("unit_id") != "" && filters.UnitID <= 0 {
		respondWithError(w, errors.NewBadRequestError("unit_id must be positive", nil).WithRequestID(requestID))
		return
	}

	sensors, err := h.service.ListSensors(r.Context(), skip, limit, filters)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, sensors)
}

// @Summary Get a sensor by ID
// @Description Get detailed information about a specific sensor
// @Tags sensors
// @Produce json
// @Param id path int true "Sensor ID"
// @Success 200 {object} models.Sensor
// @Failure 404 {object} errors.APIError
// @Router /sensors/{id} [get]
func (h *SensorHandlers) GetSensor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	sensor, err := h.service.GetSensor(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, sensor)
}

// @Summary Update a sensor
// @Description Partially update an existing sensor; a supplied unit_id must reference an existing unit
// @Tags sensors
// @Accept json
// @Produce json
// @Param id path int true "Sensor ID"
// @Param sensor body models.SensorUpdate true "Fields to update"
// @Success 200 {object} models.Sensor
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /sensors/{id} [put]
func (h *SensorHandlers) UpdateSensor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	var update models.SensorUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, errors.NewBadRequestError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := update.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	sensor, err := h.service.UpdateSensor(r.Context(), id, &update)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, sensor)
}

// @Summary Delete a sensor
// @Description Delete a sensor and all its readings
// @Tags sensors
// @Produce json
// @Param id path int true "Sensor ID"
// @Success 200 {object} deleteResponse
// @Failure 404 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /sensors/{id} [delete]
func (h *SensorHandlers) DeleteSensor(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	if err := h.service.DeleteSensor(r.Context(), id); err != nil {
		if errors.IsConflict(err) {
			respondWithError(w, errors.NewConflictError(
				fmt.Sprintf("Cannot delete sensor %d. It may have associated sensor data.", id), err,
			).WithRequestID(requestID))
			return
		}
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, deleteResponse{
		Message:   fmt.Sprintf("Sensor with id %d deleted successfully", id),
		DeletedID: id,
	})
}
