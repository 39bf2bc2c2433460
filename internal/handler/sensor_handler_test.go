package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSensorStore struct {
	sensors map[uint]model.Sensor
	nextID  uint
	failAll bool
}

func newFakeSensorStore() *fakeSensorStore {
	return &fakeSensorStore{sensors: make(map[uint]model.Sensor), nextID: 1}
}

func (s *fakeSensorStore) Create(_ context.Context, sensor *model.Sensor) error {
	if s.failAll {
		return assert.AnError
	}
	sensor.SensorID = s.nextID
	s.nextID++
	if sensor.Status == "" {
		sensor.Status = model.SensorStatusInactive
	}
	s.sensors[sensor.SensorID] = *sensor
	return nil
}

func (s *fakeSensorStore) List(_ context.Context) ([]model.Sensor, error) {
	if s.failAll {
		return nil, assert.AnError
	}
	out := make([]model.Sensor, 0, len(s.sensors))
	for _, sensor := range s.sensors {
		out = append(out, sensor)
	}
	return out, nil
}

func (s *fakeSensorStore) GetByID(_ context.Context, id uint) (*model.Sensor, error) {
	if s.failAll {
		return nil, assert.AnError
	}
	sensor, ok := s.sensors[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &sensor, nil
}

func (s *fakeSensorStore) Update(_ context.Context, id uint, sensor *model.Sensor) error {
	if s.failAll {
		return assert.AnError
	}
	if _, ok := s.sensors[id]; !ok {
		return apperrors.ErrNotFound
	}
	sensor.SensorID = id
	s.sensors[id] = *sensor
	return nil
}

func (s *fakeSensorStore) Delete(_ context.Context, id uint) error {
	if s.failAll {
		return assert.AnError
	}
	if _, ok := s.sensors[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.sensors, id)
	return nil
}

func setupSensorRouter(store SensorStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewSensorHandler(store).RegisterRoutes(api)
	return router
}

func TestSensorCreate(t *testing.T) {
	store := newFakeSensorStore()
	router := setupSensorRouter(store)

	body := bytes.NewBufferString(`{"name":"bmp180","ip_address":"192.168.1.10","type":"temperature"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sensors", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Sensor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.SensorID)
	assert.Equal(t, "bmp180", created.Name)
	assert.Equal(t, model.SensorStatusInactive, created.Status)
}

func TestSensorCreateInvalidBody(t *testing.T) {
	router := setupSensorRouter(newFakeSensorStore())

	req := httptest.NewRequest(http.MethodPost, "/api/sensors", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSensorListEmpty(t *testing.T) {
	router := setupSensorRouter(newFakeSensorStore())

	req := httptest.NewRequest(http.MethodGet, "/api/sensors", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSensorGetNotFound(t *testing.T) {
	router := setupSensorRouter(newFakeSensorStore())

	req := httptest.NewRequest(http.MethodGet, "/api/sensors/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Sensor not found"}`, w.Body.String())
}

func TestSensorGetInvalidID(t *testing.T) {
	router := setupSensorRouter(newFakeSensorStore())

	req := httptest.NewRequest(http.MethodGet, "/api/sensors/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSensorUpdate(t *testing.T) {
	store := newFakeSensorStore()
	require.NoError(t, store.Create(context.Background(), &model.Sensor{Name: "bmp180"}))
	router := setupSensorRouter(store)

	body := bytes.NewBufferString(`{"name":"bmp280","status":"Active"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/sensors/1", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Sensor updated successfully"}`, w.Body.String())
	assert.Equal(t, "bmp280", store.sensors[1].Name)
}

func TestSensorUpdateNotFound(t *testing.T) {
	router := setupSensorRouter(newFakeSensorStore())

	body := bytes.NewBufferString(`{"name":"bmp280"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/sensors/7", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Sensor not found"}`, w.Body.String())
}

func TestSensorDelete(t *testing.T) {
	store := newFakeSensorStore()
	require.NoError(t, store.Create(context.Background(), &model.Sensor{Name: "bmp180"}))
	router := setupSensorRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/sensors/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.sensors)

	// Deleting again reports not found.
	req = httptest.NewRequest(http.MethodDelete, "/api/sensors/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSensorStoreFailure(t *testing.T) {
	store := newFakeSensorStore()
	store.failAll = true
	router := setupSensorRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/sensors", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
