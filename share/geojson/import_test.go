package geojson

import (
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/emergency-api/mocks"
	"github.com/bitmark-inc/emergency-api/schema"
)

const hospitalsGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "node/123",
      "properties": {"@id": "node/123", "name": "Mater Misericordiae", "emergency": "yes", "phone": "+353 1 803 2000"},
      "geometry": {"type": "Point", "coordinates": [-6.2680, 53.3600]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Coombe"},
      "geometry": {"type": "Point", "coordinates": [-6.2930, 53.3340]}
    },
    {
      "type": "Feature",
      "properties": {"emergency": "yes"},
      "geometry": {"type": "Point", "coordinates": [-6.2500, 53.3500]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Campus"},
      "geometry": {"type": "Polygon", "coordinates": []}
    }
  ]
}`

func TestImportHospitals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockMongoStore(ctrl)
	directory.EXPECT().UpsertHospitals([]schema.Hospital{
		{
			ID:                 "node-123",
			Name:               "Mater Misericordiae",
			Location:           schema.Location{Latitude: 53.3600, Longitude: -6.2680},
			IsEmergencyCapable: true,
			Phone:              "+353 1 803 2000",
		},
		{
			ID:       "Coombe",
			Name:     "Coombe",
			Location: schema.Location{Latitude: 53.3340, Longitude: -6.2930},
		},
	}).Return(nil)

	count, err := ImportHospitals(directory, strings.NewReader(hospitalsGeoJSON))
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportHospitalsStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockMongoStore(ctrl)
	directory.EXPECT().UpsertHospitals(gomock.Any()).Return(fmt.Errorf("mongo down"))

	count, err := ImportHospitals(directory, strings.NewReader(hospitalsGeoJSON))
	assert.EqualError(t, err, "mongo down")
	assert.Equal(t, 0, count)
}

func TestImportHospitalsNothingToImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := mocks.NewMockMongoStore(ctrl)

	count, err := ImportHospitals(directory, strings.NewReader(`{"type": "FeatureCollection", "features": []}`))
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestImportHospitalsInvalidJSON(t *testing.T) {
	_, err := ImportHospitals(nil, strings.NewReader(`{`))
	assert.Error(t, err)
}
