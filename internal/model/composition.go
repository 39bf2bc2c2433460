package model

import "time"

// Composition links a gateway to a product it is built from. Both foreign keys
// cascade: deleting the gateway or the product removes the link rows.
type Composition struct {
	GatewayID uint      `json:"gateway_id" gorm:"column:gateway_id;primaryKey"`
	ProductID uint      `json:"product_id" gorm:"column:product_id;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`

	Gateway *Gateway `json:"-" gorm:"foreignKey:GatewayID;references:GatewayID;constraint:OnDelete:CASCADE"`
	Product *Product `json:"-" gorm:"foreignKey:ProductID;references:IDProd;constraint:OnDelete:CASCADE"`
}

func (Composition) TableName() string {
	return "composition"
}
