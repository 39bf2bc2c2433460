package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCollecteStore struct {
	rows []model.Collecte
}

func (s *fakeCollecteStore) Create(_ context.Context, c *model.Collecte) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.rows = append(s.rows, *c)
	return nil
}

func (s *fakeCollecteStore) List(_ context.Context) ([]model.Collecte, error) {
	out := make([]model.Collecte, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *fakeCollecteStore) GetByIDs(_ context.Context, sensorID, gatewayID uint) (*model.Collecte, error) {
	for _, c := range s.rows {
		if c.SensorID == sensorID && c.GatewayID == gatewayID {
			found := c
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *fakeCollecteStore) ListBySensor(_ context.Context, sensorID uint) ([]model.Collecte, error) {
	out := make([]model.Collecte, 0)
	for _, c := range s.rows {
		if c.SensorID == sensorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCollecteStore) ListByGateway(_ context.Context, gatewayID uint) ([]model.Collecte, error) {
	out := make([]model.Collecte, 0)
	for _, c := range s.rows {
		if c.GatewayID == gatewayID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeCollecteStore) Update(_ context.Context, sensorID, gatewayID uint, upd *model.Collecte) error {
	matched := false
	for i := range s.rows {
		if s.rows[i].SensorID == sensorID && s.rows[i].GatewayID == gatewayID {
			s.rows[i].Measurement = upd.Measurement
			s.rows[i].ErrorRate = upd.ErrorRate
			s.rows[i].Unit = upd.Unit
			matched = true
		}
	}
	if !matched {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *fakeCollecteStore) Delete(_ context.Context, sensorID, gatewayID uint) error {
	kept := s.rows[:0]
	matched := false
	for _, c := range s.rows {
		if c.SensorID == sensorID && c.GatewayID == gatewayID {
			matched = true
			continue
		}
		kept = append(kept, c)
	}
	if !matched {
		return apperrors.ErrNotFound
	}
	s.rows = kept
	return nil
}

func setupCollecteRouter(store CollecteStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewCollecteHandler(store).RegisterRoutes(api)
	return router
}

func TestCollecteCreate(t *testing.T) {
	store := &fakeCollecteStore{}
	router := setupCollecteRouter(store)

	body := bytes.NewBufferString(`{"sensor_id":1,"gateway_id":2,"measurement":21.5,"error_rate":0.1,"unit":"C"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/collectes", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Collecte
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.SensorID)
	assert.Equal(t, uint(2), created.GatewayID)
	assert.InDelta(t, 21.5, created.Measurement, 0.001)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCollecteGetFirstMatch(t *testing.T) {
	store := &fakeCollecteStore{}
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &model.Collecte{SensorID: 1, GatewayID: 2, Measurement: 20, Unit: "C"}))
	require.NoError(t, store.Create(ctx, &model.Collecte{SensorID: 1, GatewayID: 2, Measurement: 25, Unit: "C"}))
	router := setupCollecteRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/collectes/1/2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// The pair is a key prefix only; exactly one of the matching rows comes back.
	var got model.Collecte
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint(1), got.SensorID)
	assert.Equal(t, uint(2), got.GatewayID)
}

func TestCollecteUpdateAllRowsForPair(t *testing.T) {
	store := &fakeCollecteStore{}
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &model.Collecte{SensorID: 1, GatewayID: 2, Measurement: 20, Unit: "C"}))
	require.NoError(t, store.Create(ctx, &model.Collecte{SensorID: 1, GatewayID: 2, Measurement: 25, Unit: "C"}))
	require.NoError(t, store.Create(ctx, &model.Collecte{SensorID: 3, GatewayID: 2, Measurement: 30, Unit: "C"}))
	router := setupCollecteRouter(store)

	body := bytes.NewBufferString(`{"measurement":99,"error_rate":0.5,"unit":"F"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/collectes/1/2", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range store.rows {
		if c.SensorID == 1 && c.GatewayID == 2 {
			assert.InDelta(t, 99, c.Measurement, 0.001)
			assert.Equal(t, "F", c.Unit)
		} else {
			assert.InDelta(t, 30, c.Measurement, 0.001)
		}
	}
}

func TestCollecteDeleteNotFound(t *testing.T) {
	router := setupCollecteRouter(&fakeCollecteStore{})

	req := httptest.NewRequest(http.MethodDelete, "/api/collectes/9/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Collecte not found"}`, w.Body.String())
}

func TestCollecteListBySensor(t *testing.T) {
	store := &fakeCollecteStore{}
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &model.Collecte{SensorID: 1, GatewayID: 2}))
	require.NoError(t, store.Create(ctx, &model.Collecte{SensorID: 1, GatewayID: 3}))
	require.NoError(t, store.Create(ctx, &model.Collecte{SensorID: 2, GatewayID: 2}))
	router := setupCollecteRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/collectes/sensor/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rows []model.Collecte
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}
