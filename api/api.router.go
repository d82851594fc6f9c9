// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itsatony/sensormgmt/api/middleware"
	"github.com/itsatony/sensormgmt/api/resources"
	"github.com/itsatony/sensormgmt/internal/service"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

// NewRouter wires all resource handlers onto the /api/v1 surface. The
// health handler is injected because it needs the database pool.
func NewRouter(svc *service.Service, health http.HandlerFunc) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}
	r.resources.SetHealthCheck(health)

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	r.router.Use(middleware.RequestID)

	r.router.HandleFunc("/", r.handleRoot).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)

	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Units
	units := api.PathPrefix("/units").Subrouter()
	units.HandleFunc("", r.resources.Units.ListUnits).Methods(http.MethodGet)
	units.HandleFunc("", r.resources.Units.CreateUnit).Methods(http.MethodPost)
	units.HandleFunc("/{id}", r.resources.Units.GetUnit).Methods(http.MethodGet)
	units.HandleFunc("/{id}", r.resources.Units.UpdateUnit).Methods(http.MethodPut)
	units.HandleFunc("/{id}", r.resources.Units.DeleteUnit).Methods(http.MethodDelete)
	units.HandleFunc("/{id}/statistics", r.resources.Units.GetUnitStatistics).Methods(http.MethodGet)

	// Sensors
	sensors := api.PathPrefix("/sensors").Subrouter()
	sensors.HandleFunc("", r.resources.Sensors.ListSensors).Methods(http.MethodGet)
	sensors.HandleFunc("", r.resources.Sensors.CreateSensor).Methods(http.MethodPost)
	sensors.HandleFunc("/{id}", r.resources.Sensors.GetSensor).Methods(http.MethodGet)
	sensors.HandleFunc("/{id}", r.resources.Sensors.UpdateSensor).Methods(http.MethodPut)
	sensors.HandleFunc("/{id}", r.resources.Sensors.DeleteSensor).Methods(http.MethodDelete)

	// Sensor data
	sensorData := api.PathPrefix("/sensor-data").Subrouter()
	sensorData.HandleFunc("", r.resources.SensorData.ListSensorData).Methods(http.MethodGet)
	sensorData.HandleFunc("", r.resources.SensorData.CreateSensorData).Methods(http.MethodPost)
	sensorData.HandleFunc("/{id}", r.resources.SensorData.GetSensorData).Methods(http.MethodGet)
	sensorData.HandleFunc("/{id}", r.resources.SensorData.UpdateSensorData).Methods(http.MethodPut)
	sensorData.HandleFunc("/{id}", r.resources.SensorData.DeleteSensorData).Methods(http.MethodDelete)
	sensorData.HandleFunc("/{id}/validate", r.resources.SensorData.ValidateSensorData).Methods(http.MethodPut)
	sensorData.HandleFunc("/{id}/archive", r.resources.SensorData.ArchiveSensorData).Methods(http.MethodPut)
}

func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Sensor Management API","version":"1.0.0","status":"running"}`))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
