package model

import "time"

type ProductStatus string

const (
	ProductStatusAvailable  ProductStatus = "Available"
	ProductStatusOutOfStock ProductStatus = "OutOfStock"
	ProductStatusRestocking ProductStatus = "Restocking"
)

// Valid reports whether the value belongs to the product status enumeration.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusAvailable, ProductStatusOutOfStock, ProductStatusRestocking:
		return true
	}
	return false
}

type Product struct {
	IDProd      uint          `json:"idprod" gorm:"column:idprod;primaryKey;autoIncrement"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	UnitPrice   float64       `json:"unit_price" gorm:"column:unit_price;type:decimal(10,2)"`
	Quantity    int           `json:"quantity"`
	Status      ProductStatus `json:"status" gorm:"type:varchar(20);default:Available"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime:false"`
}

func (Product) TableName() string {
	return "product"
}
