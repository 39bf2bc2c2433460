package database

import (
	"fmt"

	"iot-fleet-inventory/internal/model"

	"gorm.io/gorm"
)

// Seed wipes the inventory tables and inserts the demo fleet: two sensors,
// two gateways, one admin, two products, and linking rows for composition and
// assignement.
func (d *Database) Seed() error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"collecte", "data_collected", "assignement", "composition", "product", "admin", "gateway", "sensor"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear table %s: %w", table, err)
			}
		}

		sensors := []model.Sensor{
			{Name: "bmp", IPAddress: "192.168.1.1", Description: "BMP Sensor", Type: "BMP", Status: model.SensorStatusActive},
			{Name: "801s", IPAddress: "192.168.1.2", Description: "801s Sensor", Type: "801s", Status: model.SensorStatusActive},
		}
		if err := tx.Create(&sensors).Error; err != nil {
			return fmt.Errorf("failed to seed sensors: %w", err)
		}

		gateways := []model.Gateway{
			{Name: "esp32", IPAddress: "192.168.2.1", MACAddress: "AA:BB:CC:DD:EE:FF", Type: "ESP32", Status: model.GatewayStatusOnline},
			{Name: "arduino", IPAddress: "192.168.2.2", MACAddress: "11:22:33:44:55:66", Type: "Arduino", Status: model.GatewayStatusOnline},
		}
		if err := tx.Create(&gateways).Error; err != nil {
			return fmt.Errorf("failed to seed gateways: %w", err)
		}

		admin := model.Admin{Name: "Admin", Surname: "Super", Mail: "admin@example.com", Role: "Admin"}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}

		products := []model.Product{
			{Name: "product1", Category: "Category1", Description: "Description1", UnitPrice: 10.99, Quantity: 100, Status: model.ProductStatusAvailable},
			{Name: "product2", Category: "Category2", Description: "Description2", UnitPrice: 20.99, Quantity: 50, Status: model.ProductStatusAvailable},
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		compositions := []model.Composition{
			{GatewayID: gateways[0].GatewayID, ProductID: products[0].IDProd},
			{GatewayID: gateways[0].GatewayID, ProductID: products[1].IDProd},
		}
		if err := tx.Create(&compositions).Error; err != nil {
			return fmt.Errorf("failed to seed compositions: %w", err)
		}

		assignements := []model.Assignement{
			{GatewayID: gateways[0].GatewayID, SensorID: sensors[0].SensorID},
			{GatewayID: gateways[0].GatewayID, SensorID: sensors[1].SensorID},
		}
		if err := tx.Create(&assignements).Error; err != nil {
			return fmt.Errorf("failed to seed assignements: %w", err)
		}

		return nil
	})
}
