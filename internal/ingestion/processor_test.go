package ingestion

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"iot-fleet-inventory/internal/event"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type duplicateCollecteWriter struct{}

func (duplicateCollecteWriter) Create(context.Context, *model.Collecte) error {
	return fmt.Errorf("failed to create collecte: %w", apperrors.ErrDuplicateKey)
}

type recordingCollecteWriter struct {
	mu   sync.Mutex
	rows []model.Collecte
}

func (w *recordingCollecteWriter) Create(_ context.Context, c *model.Collecte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = append(w.rows, *c)
	return nil
}

type recordingDataCollectedWriter struct {
	mu   sync.Mutex
	rows []model.DataCollected
}

func (w *recordingDataCollectedWriter) Create(_ context.Context, r *model.DataCollected) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = append(w.rows, *r)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.MeasurementStored
}

func (p *recordingPublisher) PublishMeasurementStored(_ context.Context, e event.MeasurementStored) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func TestParseMeasurement(t *testing.T) {
	payload := []byte(`{"sensor_id":1,"gateway_id":2,"measurement":21.5,"error_rate":0.1,"unit":"C"}`)

	msg, err := ParseMeasurement(payload)
	require.NoError(t, err)
	assert.Equal(t, uint(1), msg.SensorID)
	assert.Equal(t, uint(2), msg.GatewayID)
	assert.InDelta(t, 21.5, msg.Measurement, 0.001)
	assert.False(t, msg.Timestamp.IsZero(), "missing timestamp defaults to now")
}

func TestParseMeasurementInvalidJSON(t *testing.T) {
	_, err := ParseMeasurement([]byte("not json"))
	assert.Error(t, err)
}

func TestValidateMeasurement(t *testing.T) {
	valid := &MeasurementMessage{SensorID: 1, GatewayID: 2, Unit: "C"}
	assert.NoError(t, ValidateMeasurement(valid))

	assert.Error(t, ValidateMeasurement(&MeasurementMessage{GatewayID: 2, Unit: "C"}))
	assert.Error(t, ValidateMeasurement(&MeasurementMessage{SensorID: 1, Unit: "C"}))
	assert.Error(t, ValidateMeasurement(&MeasurementMessage{SensorID: 1, GatewayID: 2}))
}

func TestProcessorStoresBothRecords(t *testing.T) {
	collectes := &recordingCollecteWriter{}
	records := &recordingDataCollectedWriter{}
	publisher := &recordingPublisher{}

	p := NewProcessor(collectes, records, publisher, 2, 16, nil)
	p.Start()

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	p.Enqueue(&MeasurementMessage{
		SensorID:     1,
		GatewayID:    2,
		Timestamp:    ts,
		Measurement:  42,
		ErrorRate:    0.2,
		Unit:         "C",
		DataQuality:  "good",
		BatteryLevel: 87.5,
	})

	p.Stop()

	require.Len(t, collectes.rows, 1)
	assert.Equal(t, ts, collectes.rows[0].CreatedAt)
	assert.InDelta(t, 42, collectes.rows[0].Measurement, 0.001)

	require.Len(t, records.rows, 1)
	assert.Equal(t, uint(1), records.rows[0].SensorID)
	assert.Equal(t, "good", records.rows[0].DataQuality)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, uint(2), publisher.events[0].GatewayID)
}

func TestProcessorLegacyMessageSkipsExtendedRecord(t *testing.T) {
	collectes := &recordingCollecteWriter{}
	records := &recordingDataCollectedWriter{}
	publisher := &recordingPublisher{}

	p := NewProcessor(collectes, records, publisher, 1, 16, nil)
	p.Start()

	// Core fields only: no extended telemetry, so no data_collected row.
	p.Enqueue(&MeasurementMessage{
		SensorID:    1,
		GatewayID:   2,
		Measurement: 42,
		Unit:        "C",
	})

	p.Stop()

	require.Len(t, collectes.rows, 1)
	assert.Empty(t, records.rows)
	assert.Len(t, publisher.events, 1)
}

func TestProcessorSkipsRedeliveredMeasurement(t *testing.T) {
	records := &recordingDataCollectedWriter{}
	publisher := &recordingPublisher{}

	p := NewProcessor(duplicateCollecteWriter{}, records, publisher, 1, 16, nil)
	p.Start()

	p.Enqueue(&MeasurementMessage{SensorID: 1, GatewayID: 2, Unit: "C", DataQuality: "good"})

	p.Stop()

	// A redelivered tuple is dropped quietly: no extended row, no event.
	assert.Empty(t, records.rows)
	assert.Empty(t, publisher.events)
}

func TestProcessorRejectsInvalidMessage(t *testing.T) {
	collectes := &recordingCollecteWriter{}
	records := &recordingDataCollectedWriter{}

	p := NewProcessor(collectes, records, nil, 1, 16, nil)
	p.Start()

	p.Enqueue(&MeasurementMessage{Measurement: 42})

	p.Stop()

	assert.Empty(t, collectes.rows)
	assert.Empty(t, records.rows)
}
