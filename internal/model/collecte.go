package model

import "time"

// Collecte is the legacy measurement record. The creation timestamp is part of
// the primary key, so the same (gateway, sensor) pair accumulates one row per
// distinct instant. Lookups by the pair alone are ambiguous; see the
// repository's GetByIDs.
type Collecte struct {
	GatewayID   uint      `json:"gateway_id" gorm:"column:gateway_id;primaryKey"`
	SensorID    uint      `json:"sensor_id" gorm:"column:sensor_id;primaryKey"`
	CreatedAt   time.Time `json:"created_at" gorm:"primaryKey"`
	Measurement float64   `json:"measurement"`
	ErrorRate   float64   `json:"error_rate" gorm:"column:error_rate"`
	Unit        string    `json:"unit"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	Gateway *Gateway `json:"-" gorm:"foreignKey:GatewayID;references:GatewayID"`
	Sensor  *Sensor  `json:"-" gorm:"foreignKey:SensorID;references:SensorID"`
}

func (Collecte) TableName() string {
	return "collecte"
}
