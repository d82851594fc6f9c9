// FilePath: api/resources/api.resource.sensordata.go
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

// SensorDataHandlers encapsulates the sensor-data-related HTTP handlers
type SensorDataHandlers struct {
	service *service.Service
}

// @Summary Create sensor data
// @Description Record a new reading for an existing sensor; status defaults to pending
// @Tags sensor-data
// @Accept json
// @Produce json
// @Param data body models.SensorDataCreate true "Reading details"
// @Success 201 {object} models.SensorData
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Failure 422 {object} errors.APIError
// @Router /sensor-data [post]
func (h *SensorDataHandlers) CreateSensorData(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var create models.SensorDataCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		respondWithError(w, errors.NewBadRequestError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := create.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	data, err := h.service.CreateSensorData(r.Context(), &create)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, data)
}

// @Summary List sensor data
// @Description Get paginated readings, newest first; filter by sensor_id or status, or request the joined detail view
// @Tags sensor-data
// @Produce json
// @Param skip query int false "Number of records to skip"
// @Param limit query int false "Maximum number of records to return (1-100)"
// @Param sensor_id query int false "Filter by sensor ID"
// @Param status query string false "Filter by status (pending|validated|archived|invalid)"
// @Param with_details query bool false "Include sensor and unit details (takes precedence over filters)"
// @Success 200 {array} models.SensorData
// @Failure 400 {object} errors.APIError
// @Router /sensor-data [get]
func (h *SensorDataHandlers) ListSensorData(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	skip, limit, apiErr := getPaginationParams(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	var filters models.SensorDataFilters
	if err := queryDecoder.Decode(&filters, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewBadRequestError("invalid query parameters", err).WithRequestID(requestID))
		return
	}
	if r.URL.Query().Get("sensor_id") != "" && filters.SensorID <= 0 {
		respondWithError(w, errors.NewBadRequestError("sensor_id must be positive", nil).WithRequestID(requestID))
		return
	}
	if filters.Status != "" && !filters.Status.Valid() {
		respondWithError(w, errors.NewBadRequestError(
			fmt.Sprintf("invalid status filter %q", filters.Status), nil,
		).WithRequestID(requestID))
		return
	}

	data, err := h.service.ListSensorData(r.Context(), skip, limit, filters)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, data)
}

// @Summary Get sensor data by ID
// @Description Get a specific reading
// @Tags sensor-data
// @Produce json
// @Param id path int true "SensorData ID"
// @Success 200 {object} models.SensorData
// @Failure 404 {object} errors.APIError
// @Router /sensor-data/{id} [get]
func (h *SensorDataHandlers) GetSensorData(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	data, err := h.service.GetSensorData(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, data)
}

// @Summary Update sensor data
// @Description Partially update a reading's value, unit, or status
// @Tags sensor-data
// @Accept json
// @Produce json
// @Param id path int true "SensorData ID"
// @Param data body models.SensorDataUpdate true "Fields to update"
// @Success 200 {object} models.SensorData
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /sensor-data/{id} [put]
func (h *SensorDataHandlers) UpdateSensorData(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	var update models.SensorDataUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, errors.NewBadRequestError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := update.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	data, err := h.service.UpdateSensorData(r.Context(), id, &update)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, data)
}

// @Summary Validate sensor data
// @Description Transition a reading to validated; conflicts when already validated or archived
// @Tags sensor-data
// @Produce json
// @Param id path int true "SensorData ID"
// @Success 200 {object} models.SensorData
// @Failure 404 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /sensor-data/{id}/validate [put]
func (h *SensorDataHandlers) ValidateSensorData(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	data, err := h.service.ValidateSensorData(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, data)
}

// @Summary Archive sensor data
// @Description Transition a reading to archived; conflicts when already archived
// @Tags sensor-data
// @Produce json
// @Param id path int true "SensorData ID"
// @Success 200 {object} models.SensorData
// @Failure 404 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /sensor-data/{id}/archive [put]
func (h *SensorDataHandlers) ArchiveSensorData(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	data, err := h.service.ArchiveSensorData(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, data)
}

// @Summary Delete sensor data
// @Description Delete a single reading
// @Tags sensor-data
// @Produce json
// @Param id path int true "SensorData ID"
// @Success 200 {object} deleteResponse
// @Failure 404 {object} errors.APIError
// @Router /sensor-data/{id} [delete]
func (h *SensorDataHandlers) DeleteSensorData(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	if err := h.service.DeleteSensorData(r.Context(), id); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, deleteResponse{
		Message:   fmt.Sprintf("Sensor data with id %d deleted successfully", id),
		DeletedID: id,
	})
}
