package database

import (
	"fmt"

	"iot-fleet-inventory/internal/model"
)

// Migrate creates or alters the eight inventory tables. Additive only: it
// never drops columns or tables. Foreign-key behavior comes from the model
// tags — composition rows cascade with their gateway/product, assignement
// rows do not.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(
		&model.Sensor{},
		&model.Gateway{},
		&model.Admin{},
		&model.Product{},
		&model.Composition{},
		&model.Assignement{},
		&model.Collecte{},
		&model.DataCollected{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// Drop removes all inventory tables in dependency order.
func (d *Database) Drop() error {
	return d.DB.Migrator().DropTable(
		&model.DataCollected{},
		&model.Collecte{},
		&model.Assignement{},
		&model.Composition{},
		&model.Product{},
		&model.Admin{},
		&model.Gateway{},
		&model.Sensor{},
	)
}
