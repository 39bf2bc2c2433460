package ingestion

import (
	"errors"
	"fmt"
	"sync"

	"iot-fleet-inventory/internal/logger"
	pkgmqtt "iot-fleet-inventory/pkg/mqtt"

	"go.uber.org/zap"
)

// MQTTIngestionConfig describes the topic and MQTT connection parameters.
type MQTTIngestionConfig struct {
	ClientConfig     *pkgmqtt.Config
	MeasurementTopic string
	QoS              byte
}

// MQTTIngestionClient wires MQTT messages into the ingestion processor.
type MQTTIngestionClient struct {
	cfg       *MQTTIngestionConfig
	client    *pkgmqtt.Client
	processor *Processor

	mu            sync.Mutex
	started       bool
	subscriptions []string
}

// NewMQTTIngestionClient builds a new MQTT client for ingestion.
func NewMQTTIngestionClient(cfg *MQTTIngestionConfig, processor *Processor) (*MQTTIngestionClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	if cfg.MeasurementTopic == "" {
		return nil, errors.New("measurement topic is required")
	}
	if processor == nil {
		return nil, errors.New("processor is required")
	}

	client := pkgmqtt.NewClient(cfg.ClientConfig)
	return &MQTTIngestionClient{
		cfg:       cfg,
		client:    client,
		processor: processor,
	}, nil
}

// Start establishes the MQTT connection and subscribes to the topic.
func (c *MQTTIngestionClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	if err := c.client.Subscribe(c.cfg.MeasurementTopic, c.cfg.QoS, c.handleMeasurementMessage); err != nil {
		c.client.Disconnect()
		return fmt.Errorf("subscribe failed for topic %s: %w", c.cfg.MeasurementTopic, err)
	}
	c.subscriptions = append(c.subscriptions, c.cfg.MeasurementTopic)

	c.started = true
	return nil
}

// Stop unsubscribes and disconnects from the broker.
func (c *MQTTIngestionClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	if len(c.subscriptions) > 0 {
		if err := c.client.Unsubscribe(c.subscriptions...); err != nil {
			logger.Warn("Failed to unsubscribe from MQTT topics", zap.Error(err))
		}
	}

	c.client.Disconnect()
	c.started = false
	c.subscriptions = nil
}

// handleMeasurementMessage decodes a measurement and hands it to the processor.
func (c *MQTTIngestionClient) handleMeasurementMessage(topic string, payload []byte) {
	msg, err := ParseMeasurement(payload)
	if err != nil {
		logger.Warn("Invalid measurement payload", zap.String("topic", topic), zap.Error(err))
		return
	}

	c.processor.Enqueue(msg)
}
