package ingestion

import (
	"context"
	"sync"
	"time"

	"iot-fleet-inventory/internal/event"
	"iot-fleet-inventory/internal/logger"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
	"iot-fleet-inventory/pkg/metrics"

	"go.uber.org/zap"
)

// CollecteWriter stores legacy measurement records.
type CollecteWriter interface {
	Create(ctx context.Context, collecte *model.Collecte) error
}

// DataCollectedWriter stores extended measurement records.
type DataCollectedWriter interface {
	Create(ctx context.Context, record *model.DataCollected) error
}

// EventPublisher announces stored measurements. A nil publisher drops events.
type EventPublisher interface {
	PublishMeasurementStored(ctx context.Context, e event.MeasurementStored) error
}

// Processor fans measurement messages out to a pool of workers that persist
// them. Messages arriving while the queue is full are dropped rather than
// blocking the MQTT receive path.
type Processor struct {
	collectes CollecteWriter
	records   DataCollectedWriter
	publisher EventPublisher

	workerCount int
	queue       chan *MeasurementMessage

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	metrics *metrics.IngestionMetrics
}

// NewProcessor creates a processor with the given worker pool size.
func NewProcessor(collectes CollecteWriter, records DataCollectedWriter, publisher EventPublisher, workerCount, bufferSize int, m *metrics.IngestionMetrics) *Processor {
	if workerCount <= 0 {
		workerCount = 1
	}
	if bufferSize <= 0 {
		bufferSize = 256
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Processor{
		collectes:   collectes,
		records:     records,
		publisher:   publisher,
		workerCount: workerCount,
		queue:       make(chan *MeasurementMessage, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
		metrics:     m,
	}
}

// Start launches the worker pool.
func (p *Processor) Start() {
	logger.Info("Starting ingestion processor", zap.Int("workers", p.workerCount))

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop drains the queue and waits for workers to finish.
func (p *Processor) Stop() {
	p.cancel()
	close(p.queue)
	p.wg.Wait()
	logger.Info("Ingestion processor stopped")
}

// Enqueue queues a measurement for processing. Full queue drops the message.
func (p *Processor) Enqueue(msg *MeasurementMessage) {
	if p.metrics != nil {
		p.metrics.MessagesReceived.Inc()
	}

	select {
	case p.queue <- msg:
		if p.metrics != nil {
			p.metrics.QueueDepth.Set(float64(len(p.queue)))
		}
	case <-p.ctx.Done():
	default:
		logger.Warn("Ingestion queue full, dropping message",
			zap.Uint("sensor_id", msg.SensorID),
			zap.Uint("gateway_id", msg.GatewayID),
		)
		if p.metrics != nil {
			p.metrics.MessagesDropped.Inc()
		}
	}
}

func (p *Processor) worker(id int) {
	defer p.wg.Done()

	for msg := range p.queue {
		start := time.Now()

		if err := p.process(msg); err != nil {
			logger.Error("Failed to process measurement",
				zap.Int("worker", id),
				zap.Uint("sensor_id", msg.SensorID),
				zap.Uint("gateway_id", msg.GatewayID),
				zap.Error(err),
			)
			if p.metrics != nil {
				p.metrics.MessagesFailed.WithLabelValues("store").Inc()
			}
			continue
		}

		if p.metrics != nil {
			p.metrics.MessagesProcessed.Inc()
			p.metrics.ProcessDuration.Observe(time.Since(start).Seconds())
			p.metrics.QueueDepth.Set(float64(len(p.queue)))
		}
	}
}

func (p *Processor) process(msg *MeasurementMessage) error {
	if err := ValidateMeasurement(msg); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.collectes.Create(ctx, msg.toCollecte()); err != nil {
		if apperrors.IsDuplicateKey(err) {
			// Same sensor/gateway/timestamp tuple seen before: a redelivery,
			// not a failure.
			logger.Warn("Duplicate measurement, skipping",
				zap.Uint("sensor_id", msg.SensorID),
				zap.Uint("gateway_id", msg.GatewayID),
				zap.Time("timestamp", msg.Timestamp),
			)
			return nil
		}
		return err
	}
	if msg.hasExtendedTelemetry() {
		if err := p.records.Create(ctx, msg.toDataCollected()); err != nil {
			return err
		}
	}

	if p.publisher != nil {
		stored := event.MeasurementStored{
			SensorID:    msg.SensorID,
			GatewayID:   msg.GatewayID,
			Measurement: msg.Measurement,
			Unit:        msg.Unit,
			StoredAt:    time.Now(),
		}
		if err := p.publisher.PublishMeasurementStored(ctx, stored); err != nil {
			// Storage succeeded; the event is best-effort.
			logger.Warn("Failed to publish measurement event", zap.Error(err))
		}
	}

	return nil
}
