// Package ingestion consumes measurement messages from MQTT and stores them.
package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"iot-fleet-inventory/internal/model"
)

// MeasurementMessage is the wire format published by field gateways.
type MeasurementMessage struct {
	SensorID    uint      `json:"sensor_id"`
	GatewayID   uint      `json:"gateway_id"`
	Timestamp   time.Time `json:"timestamp"`
	Measurement float64   `json:"measurement"`
	ErrorRate   float64   `json:"error_rate"`
	Unit        string    `json:"unit"`

	// Extended telemetry, optional.
	MeasurementAccuracy  float64       `json:"measurement_accuracy"`
	DataQuality          string        `json:"data_quality"`
	TransmissionProtocol string        `json:"transmission_protocol"`
	BatteryLevel         float64       `json:"battery_level"`
	SignalStrength       int           `json:"signal_strength"`
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	Altitude             float64       `json:"altitude"`
	SensorConfiguration  model.JSONMap `json:"sensor_configuration"`
}

// ParseMeasurement parses a JSON payload into a MeasurementMessage.
func ParseMeasurement(payload []byte) (*MeasurementMessage, error) {
	var msg MeasurementMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}

// ValidateMeasurement checks the fields a message must carry before storage.
func ValidateMeasurement(msg *MeasurementMessage) error {
	if msg.SensorID == 0 {
		return fmt.Errorf("sensor_id is required")
	}
	if msg.GatewayID == 0 {
		return fmt.Errorf("gateway_id is required")
	}
	if msg.Unit == "" {
		return fmt.Errorf("unit is required")
	}
	return nil
}

// hasExtendedTelemetry reports whether the message carries any field that is
// stored only in the extended record. Legacy gateways publish just the
// sensor/gateway/measurement/unit core and get no data_collected row.
func (msg *MeasurementMessage) hasExtendedTelemetry() bool {
	return msg.MeasurementAccuracy != 0 ||
		msg.DataQuality != "" ||
		msg.TransmissionProtocol != "" ||
		msg.BatteryLevel != 0 ||
		msg.SignalStrength != 0 ||
		msg.Latitude != 0 ||
		msg.Longitude != 0 ||
		msg.Altitude != 0 ||
		len(msg.SensorConfiguration) > 0
}

// toCollecte maps a message to the legacy measurement record.
func (msg *MeasurementMessage) toCollecte() *model.Collecte {
	return &model.Collecte{
		SensorID:    msg.SensorID,
		GatewayID:   msg.GatewayID,
		CreatedAt:   msg.Timestamp,
		Measurement: msg.Measurement,
		ErrorRate:   msg.ErrorRate,
		Unit:        msg.Unit,
	}
}

// toDataCollected maps a message to the extended measurement record.
func (msg *MeasurementMessage) toDataCollected() *model.DataCollected {
	return &model.DataCollected{
		SensorID:             msg.SensorID,
		GatewayID:            msg.GatewayID,
		Measurement:          msg.Measurement,
		MeasurementAccuracy:  msg.MeasurementAccuracy,
		Unit:                 msg.Unit,
		DataQuality:          msg.DataQuality,
		TransmissionProtocol: msg.TransmissionProtocol,
		BatteryLevel:         msg.BatteryLevel,
		SignalStrength:       msg.SignalStrength,
		Latitude:             msg.Latitude,
		Longitude:            msg.Longitude,
		Altitude:             msg.Altitude,
		SensorConfiguration:  msg.SensorConfiguration,
	}
}
