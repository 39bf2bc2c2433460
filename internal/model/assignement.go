package model

import "time"

// Assignement links a sensor to the gateway it reports through. The foreign
// keys are plain references without cascade: deleting a gateway or sensor
// leaves the link rows behind.
type Assignement struct {
	GatewayID uint      `json:"gateway_id" gorm:"column:gateway_id;primaryKey"`
	SensorID  uint      `json:"sensor_id" gorm:"column:sensor_id;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	Gateway *Gateway `json:"-" gorm:"foreignKey:GatewayID;references:GatewayID;constraint:OnDelete:NO ACTION"`
	Sensor  *Sensor  `json:"-" gorm:"foreignKey:SensorID;references:SensorID;constraint:OnDelete:NO ACTION"`
}

func (Assignement) TableName() string {
	return "assignement"
}
