// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/itsatony/sensormgmt/internal/errors"
	"github.com/itsatony/sensormgmt/internal/service"
	nuts "github.com/vaudience/go-nuts"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
	maxLimit     = 100
)

// queryDecoder decodes list filters from query strings
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Resources holds all HTTP resource handlers
type Resources struct {
	Units       *UnitHandlers
	Sensors     *SensorHandlers
	SensorData  *SensorDataHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *service.Service) *Resources {
	return &Resources{
		Units:      &UnitHandlers{service: svc},
		Sensors:    &SensorHandlers{service: svc},
		SensorData: &SensorDataHandlers{service: svc},
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// Helper functions shared by all resource handlers

// getPaginationParams parses skip/limit from the query string. Out-of-range
// values are rejected here, before any service call.
func getPaginationParams(r *http.Request) (skip, limit int, err *errors.APIError) {
	query := r.URL.Query()
	skip, limit = defaultSkip, defaultLimit

	if raw := query.Get("skip"); raw != "" {
		v, parseErr := strconv.Atoi(raw)
		if parseErr != nil || v < 0 {
			return 0, 0, errors.NewBadRequestError("skip parameter must be a non-negative integer", parseErr)
		}
		skip = v
	}

	if raw := query.Get("limit"); raw != "" {
		v, parseErr := strconv.Atoi(raw)
		if parseErr != nil || v < 1 || v > maxLimit {
			return 0, 0, errors.NewBadRequestError("limit must be between 1 and 100", parseErr)
		}
		limit = v
	}

	return skip, limit, nil
}

// parsePathID parses the {id} path variable and rejects non-positive ids
func parsePathID(r *http.Request, name string) (int64, *errors.APIError) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError(name+" must be a positive integer", err)
	}
	return id, nil
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

// respondWithServiceError maps a service error 1:1 onto its response code,
// wrapping unknown failures as internal so no detail leaks to the caller
func respondWithServiceError(w http.ResponseWriter, err error, requestID string) {
	respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

type deleteResponse struct {
	Message   string `json:"message"`
	DeletedID int64  `json:"deleted_id"`
}
