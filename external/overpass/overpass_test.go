package overpass_test

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/emergency-api/external/overpass"
	"github.com/bitmark-inc/emergency-api/schema"
)

func TestFindFacilities(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := ioutil.ReadAll(r.Body)
		assert.Contains(t, string(body), `node["amenity"="hospital"](around:3000,53.340000,-6.260000)`)

		_, _ = w.Write([]byte(`{"elements": [
			{"type": "node", "id": 1, "lat": 53.35, "lon": -6.26, "tags": {"name": "Mater", "emergency": "yes", "addr:street": "Eccles St", "phone": "+353 1 803 2000"}},
			{"type": "way", "id": 2, "center": {"lat": 53.33, "lon": -6.27}, "tags": {"name": "Coombe"}},
			{"type": "node", "id": 3, "lat": 53.30, "lon": -6.20, "tags": {"amenity": "hospital"}},
			{"type": "relation", "id": 4, "tags": {"name": "Nowhere"}}
		]}`))
	}))
	defer ts.Close()

	c := overpass.New(ts.URL, nil)
	hospitals, err := c.FindFacilities(context.Background(), schema.Location{Latitude: 53.34, Longitude: -6.26}, 3000)
	assert.NoError(t, err)
	assert.Equal(t, []schema.Hospital{
		{
			ID:                 "osm-node-1",
			Name:               "Mater",
			Location:           schema.Location{Latitude: 53.35, Longitude: -6.26},
			IsEmergencyCapable: true,
			Address:            "Eccles St",
			Phone:              "+353 1 803 2000",
		},
		{
			ID:       "osm-way-2",
			Name:     "Coombe",
			Location: schema.Location{Latitude: 53.33, Longitude: -6.27},
		},
	}, hospitals)
}

func TestFindFacilitiesServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := overpass.New(ts.URL, nil).FindFacilities(context.Background(), schema.Location{}, 0)
	assert.Error(t, err)
}
