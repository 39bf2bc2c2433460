package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensorStatusValid(t *testing.T) {
	for _, s := range []SensorStatus{
		SensorStatusActive,
		SensorStatusInactive,
		SensorStatusError,
		SensorStatusMaintenance,
	} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, SensorStatus("").Valid())
	assert.False(t, SensorStatus("active").Valid(), "enum values are case sensitive")
	assert.False(t, SensorStatus("Broken").Valid())
}

func TestGatewayStatusValid(t *testing.T) {
	for _, s := range []GatewayStatus{
		GatewayStatusOnline,
		GatewayStatusOffline,
		GatewayStatusError,
		GatewayStatusMaintenance,
	} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, GatewayStatus("").Valid())
	assert.False(t, GatewayStatus("Disconnected").Valid())
}

func TestProductStatusValid(t *testing.T) {
	for _, s := range []ProductStatus{
		ProductStatusAvailable,
		ProductStatusOutOfStock,
		ProductStatusRestocking,
	} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, ProductStatus("").Valid())
	assert.False(t, ProductStatus("Discontinued").Valid())
}
