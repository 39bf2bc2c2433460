package model

import "time"

type GatewayStatus string

const (
	GatewayStatusOnline      GatewayStatus = "Online"
	GatewayStatusOffline     GatewayStatus = "Offline"
	GatewayStatusError       GatewayStatus = "Error"
	GatewayStatusMaintenance GatewayStatus = "Maintenance"
)

// Valid reports whether the value belongs to the gateway status enumeration.
func (s GatewayStatus) Valid() bool {
	switch s {
	case GatewayStatusOnline, GatewayStatusOffline, GatewayStatusError, GatewayStatusMaintenance:
		return true
	}
	return false
}

type Gateway struct {
	GatewayID  uint          `json:"gateway_id" gorm:"column:gateway_id;primaryKey;autoIncrement"`
	Name       string        `json:"name"`
	IPAddress  string        `json:"ip_address" gorm:"column:ip_address"`
	MACAddress string        `json:"mac_address" gorm:"column:mac_address"`
	Type       string        `json:"type"`
	Status     GatewayStatus `json:"status" gorm:"type:varchar(20);default:Offline"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (Gateway) TableName() string {
	return "gateway"
}
