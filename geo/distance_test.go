package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/emergency-api/schema"
)

func TestHaversine(t *testing.T) {
	dublin := schema.Location{Latitude: 53.3498, Longitude: -6.2603}
	belfast := schema.Location{Latitude: 54.5973, Longitude: -5.9301}

	assert.Equal(t, float64(0), Haversine(dublin, dublin))
	assert.InDelta(t, 140.4, Haversine(dublin, belfast), 1)
	assert.InDelta(t, Haversine(dublin, belfast), Haversine(belfast, dublin), 1e-9)
}

func TestHaversineOneDegreeOfLatitude(t *testing.T) {
	d := Haversine(schema.Location{Latitude: 0, Longitude: 0}, schema.Location{Latitude: 1, Longitude: 0})
	assert.InDelta(t, 111.195, d, 0.001)
}

func TestEstimateETA(t *testing.T) {
	assert.Equal(t, 0, EstimateETA(0))
	assert.Equal(t, 2, EstimateETA(0.8))
	assert.Equal(t, 4, EstimateETA(2.1))
	assert.Equal(t, 21, EstimateETA(10.3))
}
