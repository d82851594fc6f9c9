// FilePath: api/api.router_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/itsatony/sensormgmt/internal/database"
	"github.com/itsatony/sensormgmt/internal/repository/postgres"
	"github.com/itsatony/sensormgmt/internal/service"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	unitCols       = []string{"id", "name", "location", "description", "created_at"}
	sensorCols     = []string{"id", "name", "sensor_type", "unit_id", "status", "description", "created_at"}
	sensorDataCols = []string{"id", "sensor_id", "value", "unit", "status", "timestamp"}
)

// setupRouter builds the full HTTP surface over a sqlmock-backed service.
func setupRouter(t *testing.T) (sqlmock.Sqlmock, *Router, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := database.NewFromSqlx(sqlx.NewDb(mockDB, "sqlmock"))
	svc := service.New(
		postgres.NewUnitRepository(db),
		postgres.NewSensorRepository(db),
		postgres.NewSensorDataRepository(db),
	)

	health := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}

	return mock, NewRouter(svc, health), func() { mockDB.Close() }
}

func doRequest(router *Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRootAndHealth(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	rec := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "running", body["status"])

	rec = doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaginationRejected(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	for _, path := range []string{
		"/api/v1/units?limit=0",
		"/api/v1/units?limit=101",
		"/api/v1/units?skip=-1",
		"/api/v1/sensors?limit=abc",
		"/api/v1/sensor-data?skip=x",
	} {
		rec := doRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "expected 400 for %s", path)
		body := decodeBody(t, rec)
		assert.Equal(t, "bad_request", body["type"])
	}
}

func TestInvalidPathID(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	for _, path := range []string{
		"/api/v1/units/abc",
		"/api/v1/units/0",
		"/api/v1/sensors/-5",
		"/api/v1/sensor-data/zzz",
	} {
		rec := doRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "expected 400 for %s", path)
	}
}

func TestCreateUnit(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	rows := sqlmock.NewRows(unitCols).
		AddRow(1, "Warehouse A", "Berlin", nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO units")).
		WithArgs("Warehouse A", "Berlin", nil).
		WillReturnRows(rows)

	rec := doRequest(router, http.MethodPost, "/api/v1/units",
		`{"name":"Warehouse A","location":"Berlin"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Warehouse A", body["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUnitValidation(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	rec := doRequest(router, http.MethodPost, "/api/v1/units",
		`{"location":"Berlin"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "validation", body["type"])
}

func TestCreateUnitMalformedBody(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	rec := doRequest(router, http.MethodPost, "/api/v1/units", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnitNotFound(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(unitCols))

	rec := doRequest(router, http.MethodGet, "/api/v1/units/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "not_found", body["type"])
	assert.Equal(t, "Unit with id 42 not found", body["message"])
	assert.NotEmpty(t, body["request_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestIDEchoed(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(unitCols))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/units/42", nil)
	req.Header.Set("X-Request-ID", "req_custom")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	body := decodeBody(t, rec)
	assert.Equal(t, "req_custom", body["request_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSensorMissingUnit(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(unitCols))

	rec := doRequest(router, http.MethodPost, "/api/v1/sensors",
		`{"name":"temp-01","sensor_type":"temperature","unit_id":99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Unit with id 99 not found", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSensorInvalidType(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	rec := doRequest(router, http.MethodPost, "/api/v1/sensors",
		`{"name":"x","sensor_type":"voltage","unit_id":1}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateSensorRoute(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM sensors WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(sensorCols).
			AddRow(1, "temp-01", "temperature", 1, "active", nil, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE sensors SET status = $1 WHERE id = $2 RETURNING")).
		WithArgs("maintenance", int64(1)).
		WillReturnRows(sqlmock.NewRows(sensorCols).
			AddRow(1, "temp-01", "temperature", 1, "maintenance", nil, time.Now()))

	rec := doRequest(router, http.MethodPut, "/api/v1/sensors/1",
		`{"status":"maintenance"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "maintenance", body["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSensorsRejectsBadUnitFilter(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	rec := doRequest(router, http.MethodGet, "/api/v1/sensors?unit_id=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSensorDataRejectsBadStatusFilter(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	rec := doRequest(router, http.MethodGet, "/api/v1/sensor-data?status=done", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSensorDataWithDetailsPrecedence(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	cols := append(append([]string{}, sensorDataCols...), "sensor_name", "sensor_type", "unit_name")
	rows := sqlmock.NewRows(cols).
		AddRow(1, 3, 21.5, "celsius", "pending", time.Now(), "temp-01", "temperature", "Warehouse A")

	// the sensor_id filter is ignored once with_details is requested
	mock.ExpectQuery(regexp.QuoteMeta("JOIN sensors s ON sd.sensor_id = s.id")).
		WithArgs(100, 0).
		WillReturnRows(rows)

	rec := doRequest(router, http.MethodGet, "/api/v1/sensor-data?with_details=true&sensor_id=3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "temp-01", list[0]["sensor_name"])
	assert.Equal(t, "Warehouse A", list[0]["unit_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSensorData(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM sensors WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(sensorCols).
			AddRow(1, "temp-01", "temperature", 1, "active", nil, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sensor_data")).
		WithArgs(int64(1), 21.5, nil, "pending").
		WillReturnRows(sqlmock.NewRows(sensorDataCols).
			AddRow(1, 1, 21.5, nil, "pending", time.Now()))

	rec := doRequest(router, http.MethodPost, "/api/v1/sensor-data",
		`{"sensor_id":1,"value":21.5}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, 21.5, body["value"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSensorDataRequiresValue(t *testing.T) {
	_, router, closeFn := setupRouter(t)
	defer closeFn()

	// a body without value is rejected; nothing reaches the store
	rec := doRequest(router, http.MethodPost, "/api/v1/sensor-data",
		`{"sensor_id":1}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "validation", body["type"])
	assert.Equal(t, "value is required", body["message"])
}

func TestValidateSensorDataConflict(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	rows := sqlmock.NewRows(sensorDataCols).
		AddRow(1, 1, 21.5, nil, "validated", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM sensor_data WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	rec := doRequest(router, http.MethodPut, "/api/v1/sensor-data/1/validate", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "conflict", body["type"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveSensorData(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM sensor_data WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(sensorDataCols).
			AddRow(1, 1, 21.5, nil, "pending", time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE sensor_data SET status = $1 WHERE id = $2 RETURNING")).
		WithArgs("archived", int64(1)).
		WillReturnRows(sqlmock.NewRows(sensorDataCols).
			AddRow(1, 1, 21.5, nil, "archived", time.Now()))

	rec := doRequest(router, http.MethodPut, "/api/v1/sensor-data/1/archive", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "archived", body["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnitResponse(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(unitCols).
			AddRow(1, "Warehouse A", "Berlin", nil, time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("WHERE sensor_id IN (SELECT id FROM sensors WHERE unit_id = $1)")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sensors WHERE unit_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := doRequest(router, http.MethodDelete, "/api/v1/units/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Unit with id 1 deleted successfully", body["message"])
	assert.Equal(t, float64(1), body["deleted_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnitStatisticsRoute(t *testing.T) {
	mock, router, closeFn := setupRouter(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM units WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(unitCols).
			AddRow(1, "Warehouse A", "Berlin", nil, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("COUNT(DISTINCT s.id) AS total_sensors")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"unit_id", "unit_name", "total_sensors", "active_sensors",
			"inactive_sensors", "total_data_points", "latest_data_timestamp",
		}).AddRow(1, "Warehouse A", 2, 1, 1, 40, nil))

	rec := doRequest(router, http.MethodGet, "/api/v1/units/1/statistics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["total_sensors"])
	assert.Nil(t, body["latest_data_timestamp"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
