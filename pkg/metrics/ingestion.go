package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// IngestionMetrics contains Prometheus metrics for the MQTT ingestion pipeline.
type IngestionMetrics struct {
	MessagesReceived  prometheus.Counter
	MessagesProcessed prometheus.Counter
	MessagesFailed    *prometheus.CounterVec
	MessagesDropped   prometheus.Counter
	ProcessDuration   prometheus.Histogram
	QueueDepth        prometheus.Gauge
}

// NewIngestionMetrics creates and registers ingestion pipeline metrics.
func NewIngestionMetrics(namespace string) *IngestionMetrics {
	m := &IngestionMetrics{
		MessagesReceived: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ingestion",
				Name:      "messages_received_total",
				Help:      "Total number of MQTT messages received",
			},
		),
		MessagesProcessed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ingestion",
				Name:      "messages_processed_total",
				Help:      "Total number of messages stored successfully",
			},
		),
		MessagesFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ingestion",
				Name:      "messages_failed_total",
				Help:      "Total number of messages that failed processing",
			},
			[]string{"reason"},
		),
		MessagesDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ingestion",
				Name:      "messages_dropped_total",
				Help:      "Total number of messages dropped because the queue was full",
			},
		),
		ProcessDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "ingestion",
				Name:      "process_duration_seconds",
				Help:      "Duration of message processing",
				Buckets:   prometheus.DefBuckets,
			},
		),
		QueueDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "ingestion",
				Name:      "queue_depth",
				Help:      "Number of messages waiting in the ingestion queue",
			},
		),
	}

	MustRegister(
		m.MessagesReceived,
		m.MessagesProcessed,
		m.MessagesFailed,
		m.MessagesDropped,
		m.ProcessDuration,
		m.QueueDepth,
	)

	return m
}
