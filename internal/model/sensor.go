package model

import "time"

type SensorStatus string

const (
	SensorStatusActive      SensorStatus = "Active"
	SensorStatusInactive    SensorStatus = "Inactive"
	SensorStatusError       SensorStatus = "Error"
	SensorStatusMaintenance SensorStatus = "Maintenance"
)

// Valid reports whether the value belongs to the sensor status enumeration.
func (s SensorStatus) Valid() bool {
	switch s {
	case SensorStatusActive, SensorStatusInactive, SensorStatusError, SensorStatusMaintenance:
		return true
	}
	return false
}

type Sensor struct {
	SensorID    uint         `json:"sensor_id" gorm:"column:sensor_id;primaryKey;autoIncrement"`
	Name        string       `json:"name"`
	IPAddress   string       `json:"ip_address" gorm:"column:ip_address"`
	Description string       `json:"description" gorm:"type:text"`
	Type        string       `json:"type"`
	Status      SensorStatus `json:"status" gorm:"type:varchar(20);default:Inactive"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (Sensor) TableName() string {
	return "sensor"
}
