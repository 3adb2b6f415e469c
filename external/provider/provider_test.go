package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	externalMocks "github.com/bitmark-inc/emergency-api/external/mocks"
	"github.com/bitmark-inc/emergency-api/external/osrm"
	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/mocks"
	"github.com/bitmark-inc/emergency-api/schema"
)

var dublin = schema.Location{Latitude: 53.3498, Longitude: -6.2603}

func TestCachingFacilityFinderCachesUpstreamAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hospitals := []schema.Hospital{{ID: "mater", Name: "Mater"}}
	upstream := externalMocks.NewMockFacilityFinder(ctrl)
	cache := mocks.NewMockMongoStore(ctrl)

	upstream.EXPECT().FindFacilities(gomock.Any(), dublin, 5000).Return(hospitals, nil)
	cache.EXPECT().UpsertHospitals(hospitals).Return(fmt.Errorf("mongo down"))

	actual, err := NewCachingFacilityFinder(upstream, cache).FindFacilities(context.Background(), dublin, 5000)
	assert.NoError(t, err)
	assert.Equal(t, hospitals, actual)
}

func TestFacilityFinderFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viper.Set("facility.provider", ProviderOverpass)
	viper.Set("overpass.url", "http://127.0.0.1:1")
	defer viper.Set("facility.provider", "")

	cached := []schema.Hospital{{ID: "coombe", Name: "Coombe"}}
	cache := mocks.NewMockMongoStore(ctrl)
	cache.EXPECT().FindFacilities(gomock.Any(), dublin, 5000).Return(cached, nil)

	actual, err := FacilityFinder(nil, cache).FindFacilities(context.Background(), dublin, 5000)
	assert.NoError(t, err)
	assert.Equal(t, cached, actual)
}

func TestFacilityFinderMongoOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viper.Set("facility.provider", ProviderMongo)
	defer viper.Set("facility.provider", "")

	cache := mocks.NewMockMongoStore(ctrl)
	assert.Equal(t, cache, FacilityFinder(nil, cache))
}

func TestRouteProviderDefaultsToOSRM(t *testing.T) {
	viper.Set("route.provider", ProviderGoogle)
	defer viper.Set("route.provider", "")

	assert.IsType(t, &osrm.Client{}, RouteProvider(nil))
}

func TestGeocoderWithoutMapKeyUsesNominatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Eccles St, Dublin", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"lat": "53.3597", "lon": "-6.2672"}]`))
	}))
	defer ts.Close()

	viper.Set("nominatim.url", ts.URL)
	defer viper.Set("nominatim.url", "")

	g := Geocoder(nil)
	assert.NotNil(t, g)

	location, err := g.Geocode(context.Background(), "Eccles St, Dublin")
	assert.NoError(t, err)
	assert.Equal(t, schema.Location{Latitude: 53.3597, Longitude: -6.2672}, location)
}

func TestGeocoderReportsUnknownAddress(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	viper.Set("nominatim.url", ts.URL)
	defer viper.Set("nominatim.url", "")

	_, err := Geocoder(nil).Geocode(context.Background(), "nowhere")
	assert.Error(t, err)

	location, resolved := geo.GeocodeOrDefault(context.Background(), Geocoder(nil), "nowhere", dublin)
	assert.False(t, resolved)
	assert.Equal(t, dublin, location)
}
