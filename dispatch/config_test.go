package dispatch

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/emergency-api/schema"
)

func TestNewConfiguredDispatcher(t *testing.T) {
	viper.Set("dispatch.capacity", 2)
	viper.Set("facility.radius", 3000)
	defer func() {
		viper.Set("dispatch.capacity", 0)
		viper.Set("facility.radius", 0)
	}()

	d := NewConfiguredDispatcher(nil, nil, nil, nil)
	assert.Equal(t, 2, d.Capacity)
	assert.Equal(t, 3000, d.Radius)
}

func TestNewConfiguredDispatcherDefaults(t *testing.T) {
	d := NewConfiguredDispatcher(nil, nil, nil, nil)
	assert.Equal(t, schema.DefaultHospitalCapacity, d.Capacity)
	assert.Equal(t, DefaultFacilityRadius, d.Radius)
}
