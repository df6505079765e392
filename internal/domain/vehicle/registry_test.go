package vehicle_test

import (
	"testing"

	"rainerio-service/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
)

func TestTypeRegistrySeededDefaults(t *testing.T) {
	r := vehicle.NewTypeRegistry()

	assert.True(t, r.Contains(vehicle.TypeCar))
	assert.True(t, r.Contains(vehicle.TypeMoto))
	assert.True(t, r.Contains(vehicle.TypeArmored))
	assert.False(t, r.Contains("CAMINHÃO"))
}

func TestTypeRegistryRegister(t *testing.T) {
	r := vehicle.NewTypeRegistry()

	assert.Equal(t, "CAMINHÃO", r.Register("CAMINHÃO"))
	assert.True(t, r.Contains("CAMINHÃO"))

	assert.Equal(t, "", r.Register("  "), "blank labels are ignored")
	assert.False(t, r.Contains(""))
}

func TestTypeRegistryKnownIsSorted(t *testing.T) {
	r := vehicle.NewTypeRegistry()
	r.Register("UTILITÁRIO")

	known := r.Known()
	assert.Len(t, known, 4)
	assert.IsIncreasing(t, known)
}
