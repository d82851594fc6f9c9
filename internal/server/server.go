// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/itsatony/sensormgmt/api"
	"github.com/itsatony/sensormgmt/internal/config"
	"github.com/itsatony/sensormgmt/internal/database"
	"github.com/itsatony/sensormgmt/internal/monitoring"
	"github.com/itsatony/sensormgmt/internal/repository/postgres"
	"github.com/itsatony/sensormgmt/internal/service"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	db         database.DB
	service    *service.Service
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start connects the database, wires the service stack and begins
// listening for requests. It blocks until shutdown completes.
func (s *Server) Start() error {
	if err := s.initialize(); err != nil {
		return err
	}

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

func (s *Server) initialize() error {
	db, err := database.NewPostgresDB(s.config.Database.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	s.db = db

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := database.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	units := postgres.NewUnitRepository(db)
	sensors := postgres.NewSensorRepository(db)
	sensorData := postgres.NewSensorDataRepository(db)

	svc := service.New(units, sensors, sensorData)
	if err := svc.Validate(); err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	s.service = svc

	s.monitoring = monitoring.NewService(monitoring.Config{
		LogLevel: s.config.Monitoring.LogLevel,
	})
	s.setupCleanupHandlers()

	router := api.NewRouter(svc, s.handleHealth())

	handler := ghandlers.RecoveryHandler(
		ghandlers.PrintRecoveryStack(true),
	)(router)
	handler = ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
	)(handler)
	handler = ghandlers.CombinedLoggingHandler(os.Stdout, handler)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	return nil
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			nuts.L.Errorf("[Server] Error closing database: %v", err)
		}
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// handleHealth returns a health check handler that verifies the
// database round-trip.
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			nuts.L.Errorf("[Server] Health check failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable","database":"unreachable"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","database":"connected","version":"` + nuts.GetVersion() + `"}`))
	}
}

func (s *Server) setupCleanupHandlers() {
	s.service.Cleanup.OnCleanup("unit.deleted", func(id int64) {
		nuts.L.Infof("[Cleanup] Unit %d and all associated data deleted", id)
		s.monitoring.RecordEvent("unit_deletion", map[string]string{
			"unit_id": fmt.Sprintf("%d", id),
		})
	})

	s.service.Cleanup.OnCleanup("sensor.deleted", func(id int64) {
		nuts.L.Infof("[Cleanup] Sensor %d and all associated data deleted", id)
		s.monitoring.RecordEvent("sensor_deletion", map[string]string{
			"sensor_id": fmt.Sprintf("%d", id),
		})
	})

	s.service.Cleanup.OnCleanup("sensordata.deleted", func(id int64) {
		nuts.L.Infof("[Cleanup] Sensor data for parent %d deleted", id)
		s.monitoring.RecordEvent("sensordata_deletion", map[string]string{
			"parent_id": fmt.Sprintf("%d", id),
		})
	})
}
