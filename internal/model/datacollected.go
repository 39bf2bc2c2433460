package model

import "time"

// DataCollected is the extended measurement record: the Collecte superset with
// richer telemetry and its own surrogate key.
type DataCollected struct {
	ID                   uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SensorID             uint      `json:"sensor_id" gorm:"column:sensor_id"`
	GatewayID            uint      `json:"gateway_id" gorm:"column:gateway_id"`
	Measurement          float64   `json:"measurement" gorm:"type:decimal(10,2)"`
	MeasurementAccuracy  float64   `json:"measurement_accuracy" gorm:"type:decimal(10,2)"`
	Unit                 string    `json:"unit"`
	DataQuality          string    `json:"data_quality"`
	TransmissionProtocol string    `json:"transmission_protocol"`
	Status               string    `json:"status"`
	BatteryLevel         float64   `json:"battery_level" gorm:"type:decimal(5,2)"`
	SignalStrength       int       `json:"signal_strength"`
	Latitude             float64   `json:"latitude" gorm:"type:decimal(9,6)"`
	Longitude            float64   `json:"longitude" gorm:"type:decimal(9,6)"`
	Altitude             float64   `json:"altitude" gorm:"type:decimal(10,6)"`
	SensorConfiguration  JSONMap   `json:"sensor_configuration" gorm:"type:json"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	Gateway *Gateway `json:"-" gorm:"foreignKey:GatewayID;references:GatewayID"`
	Sensor  *Sensor  `json:"-" gorm:"foreignKey:SensorID;references:SensorID"`
}

func (DataCollected) TableName() string {
	return "data_collected"
}
