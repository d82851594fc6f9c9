// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/itsatony/sensormgmt/internal/database"
	"github.com/itsatony/sensormgmt/internal/models"
)

// UnitRepository defines the interface for unit persistence
type UnitRepository interface {
	database.Repository
	Create(ctx context.Context, create *models.UnitCreate) (*models.Unit, error)
	Get(ctx context.Context, id int64) (*models.Unit, error)
	List(ctx context.Context, skip, limit int) ([]*models.Unit, error)
	Update(ctx context.Context, id int64, update *models.UnitUpdate) (*models.Unit, error)
	Delete(ctx context.Context, id int64) error
	DeleteInTx(ctx context.Context, id int64, tx database.Transaction) error
	GetStatistics(ctx context.Context, id int64) (*models.UnitStatistics, error)
}

// SensorRepository defines the interface for sensor persistence
type SensorRepository interface {
	database.Repository
	Create(ctx context.Context, create *models.SensorCreate) (*models.Sensor, error)
	Get(ctx context.Context, id int64) (*models.Sensor, error)
	List(ctx context.Context, skip, limit int) ([]*models.Sensor, error)
	ListByUnit(ctx context.Context, unitID int64, skip, limit int) ([]*models.Sensor, error)
	Update(ctx context.Context, id int64, update *models.SensorUpdate) (*models.Sensor, error)
	Delete(ctx context.Context, id int64) error
	DeleteInTx(ctx context.Context, id int64, tx database.Transaction) error
	DeleteByUnit(ctx context.Context, unitID int64, tx database.Transaction) (int64, error)
}

// SensorDataRepository defines the interface for sensor reading persistence
type SensorDataRepository interface {
	database.Repository
	Create(ctx context.Context, create *models.SensorDataCreate) (*models.SensorData, error)
	Get(ctx context.Context, id int64) (*models.SensorData, error)
	List(ctx context.Context, skip, limit int) ([]*models.SensorData, error)
	ListBySensor(ctx context.Context, sensorID int64, skip, limit int) ([]*models.SensorData, error)
	ListByStatus(ctx context.Context, status models.DataStatus, skip, limit int) ([]*models.SensorData, error)
	ListWithDetails(ctx context.Context, skip, limit int) ([]*models.SensorDataWithDetails, error)
	Update(ctx context.Context, id int64, update *models.SensorDataUpdate) (*models.SensorData, error)
	SetStatus(ctx context.Context, id int64, status models.DataStatus) (*models.SensorData, error)
	Delete(ctx context.Context, id int64) error
	DeleteBySensor(ctx context.Context, sensorID int64, tx database.Transaction) (int64, error)
	DeleteByUnit(ctx context.Context, unitID int64, tx database.Transaction) (int64, error)
}
