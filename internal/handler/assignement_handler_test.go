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

type pairKey struct {
	gatewayID uint
	sensorID  uint
}

type fakeAssignementStore struct {
	rows map[pairKey]model.Assignement
}

func newFakeAssignementStore() *fakeAssignementStore {
	return &fakeAssignementStore{rows: make(map[pairKey]model.Assignement)}
}

func (s *fakeAssignementStore) Create(_ context.Context, a *model.Assignement) error {
	key := pairKey{a.GatewayID, a.SensorID}
	if _, ok := s.rows[key]; ok {
		return apperrors.ErrDuplicateKey
	}
	s.rows[key] = *a
	return nil
}

func (s *fakeAssignementStore) List(_ context.Context) ([]model.Assignement, error) {
	out := make([]model.Assignement, 0, len(s.rows))
	for _, a := range s.rows {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeAssignementStore) GetByIDs(_ context.Context, gatewayID, sensorID uint) (*model.Assignement, error) {
	a, ok := s.rows[pairKey{gatewayID, sensorID}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (s *fakeAssignementStore) ListSensorIDsByGateway(_ context.Context, gatewayID uint) ([]uint, error) {
	ids := make([]uint, 0)
	for key := range s.rows {
		if key.gatewayID == gatewayID {
			ids = append(ids, key.sensorID)
		}
	}
	return ids, nil
}

func (s *fakeAssignementStore) ListGatewayIDsBySensor(_ context.Context, sensorID uint) ([]uint, error) {
	ids := make([]uint, 0)
	for key := range s.rows {
		if key.sensorID == sensorID {
			ids = append(ids, key.gatewayID)
		}
	}
	return ids, nil
}

func (s *fakeAssignementStore) Update(_ context.Context, gatewayID, sensorID, newGatewayID, newSensorID uint) error {
	key := pairKey{gatewayID, sensorID}
	a, ok := s.rows[key]
	if !ok {
		return apperrors.ErrNotFound
	}
	delete(s.rows, key)
	a.GatewayID = newGatewayID
	a.SensorID = newSensorID
	s.rows[pairKey{newGatewayID, newSensorID}] = a
	return nil
}

func (s *fakeAssignementStore) Delete(_ context.Context, gatewayID, sensorID uint) error {
	key := pairKey{gatewayID, sensorID}
	if _, ok := s.rows[key]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.rows, key)
	return nil
}

func setupAssignementRouter(store AssignementStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewAssignementHandler(store).RegisterRoutes(api)
	return router
}

func TestAssignementCreateAndGet(t *testing.T) {
	store := newFakeAssignementStore()
	router := setupAssignementRouter(store)

	body := bytes.NewBufferString(`{"gateway_id":1,"sensor_id":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/assignements", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/assignements/1/2", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got model.Assignement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint(1), got.GatewayID)
	assert.Equal(t, uint(2), got.SensorID)
}

func TestAssignementGetNotFound(t *testing.T) {
	router := setupAssignementRouter(newFakeAssignementStore())

	req := httptest.NewRequest(http.MethodGet, "/api/assignements/9/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Assignement not found"}`, w.Body.String())
}

func TestAssignementListByGateway(t *testing.T) {
	store := newFakeAssignementStore()
	require.NoError(t, store.Create(context.Background(), &model.Assignement{GatewayID: 1, SensorID: 2}))
	require.NoError(t, store.Create(context.Background(), &model.Assignement{GatewayID: 1, SensorID: 3}))
	require.NoError(t, store.Create(context.Background(), &model.Assignement{GatewayID: 2, SensorID: 2}))
	router := setupAssignementRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/assignements/gateway/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var ids []uint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ids))
	assert.ElementsMatch(t, []uint{2, 3}, ids)
}

func TestAssignementRekey(t *testing.T) {
	store := newFakeAssignementStore()
	require.NoError(t, store.Create(context.Background(), &model.Assignement{GatewayID: 1, SensorID: 2}))
	router := setupAssignementRouter(store)

	body := bytes.NewBufferString(`{"gateway_id":3,"sensor_id":4}`)
	req := httptest.NewRequest(http.MethodPut, "/api/assignements/1/2", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	_, oldExists := store.rows[pairKey{1, 2}]
	_, newExists := store.rows[pairKey{3, 4}]
	assert.False(t, oldExists)
	assert.True(t, newExists)
}

func TestAssignementDelete(t *testing.T) {
	store := newFakeAssignementStore()
	require.NoError(t, store.Create(context.Background(), &model.Assignement{GatewayID: 1, SensorID: 2}))
	router := setupAssignementRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/assignements/1/2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.rows)
}
