// FilePath: api/resources/api.resource.units.go
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

// UnitHandlers encapsulates the unit-related HTTP handlers
type UnitHandlers struct {
	service *service.Service
}

// @Summary Create a new unit
// @Description Create a new unit with the provided details
// @Tags units
// @Accept json
// @Produce json
// @Param unit body models.UnitCreate true "Unit details"
// @Success 201 {object} models.Unit
// @Failure 400 {object} errors.APIError
// @Failure 422 {object} errors.APIError
// @Router /units [post]
func (h *UnitHandlers) CreateUnit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var create models.UnitCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		respondWithError(w, errors.NewBadRequestError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := create.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	unit, err := h.service.CreateUnit(r.Context(), &create)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, unit)
}

// @Summary List units
// @Description Get a paginated list of units, newest first
// @Tags units
// @Produce json
// @Param skip query int false "Number of records to skip"
// @Param limit query int false "Maximum number of records to return (1-100)"
// @Success 200 {array} models.Unit
// @Failure 400 {object} errors.APIError
// @Router /units [get]
func (h *UnitHandlers) ListUnits(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	skip, limit, apiErr := getPaginationParams(r)
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	units, err := h.service.ListUnits(r.Context(), skip, limit)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, units)
}

// @Summary Get a unit by ID
// @Description Get detailed information about a specific unit
// @Tags units
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} models.Unit
// @Failure 404 {object} errors.APIError
// @Router /units/{id} [get]
func (h *UnitHandlers) GetUnit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	unit, err := h.service.GetUnit(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, unit)
}

// @Summary Update a unit
// @Description Partially update an existing unit; omitted fields keep their values
// @Tags units
// @Accept json
// @Produce json
// @Param id path int true "Unit ID"
// @Param unit body models.UnitUpdate true "Fields to update"
// @Success 200 {object} models.Unit
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /units/{id} [put]
func (h *UnitHandlers) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	var update models.UnitUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, errors.NewBadRequestError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if err := update.Validate(); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), nil).WithRequestID(requestID))
		return
	}

	unit, err := h.service.UpdateUnit(r.Context(), id, &update)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, unit)
}

// @Summary Delete a unit
// @Description Delete a unit and all its sensors and sensor data
// @Tags units
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} deleteResponse
// @Failure 404 {object} errors.APIError
// @Router /units/{id} [delete]
func (h *UnitHandlers) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	if err := h.service.DeleteUnit(r.Context(), id); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, deleteResponse{
		Message:   fmt.Sprintf("Unit with id %d deleted successfully", id),
		DeletedID: id,
	})
}

// @Summary Get unit statistics
// @Description Aggregate sensor and data counts for a unit
// @Tags units
// @Produce json
// @Param id path int true "Unit ID"
// @Success 200 {object} models.UnitStatistics
// @Failure 404 {object} errors.APIError
// @Router /units/{id}/statistics [get]
func (h *UnitHandlers) GetUnitStatistics(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	stats, err := h.service.GetUnitStatistics(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
