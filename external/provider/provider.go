package provider

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/emergency-api/external/geoinfo"
	"github.com/bitmark-inc/emergency-api/external/nominatim"
	"github.com/bitmark-inc/emergency-api/external/osrm"
	"github.com/bitmark-inc/emergency-api/external/overpass"
	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	logPrefix = "provider"

	ProviderGoogle   = "google"
	ProviderOSRM     = "osrm"
	ProviderOverpass = "overpass"
	ProviderMongo    = "mongo"
)

var httpClient = &http.Client{
	Timeout: 15 * time.Second,
}

// HospitalCache stores hospitals found by an upstream provider and serves
// them when the provider is unavailable
type HospitalCache interface {
	UpsertHospitals(hospitals []schema.Hospital) error
	FindFacilities(ctx context.Context, origin schema.Location, radiusMeters int) ([]schema.Hospital, error)
}

// Geocoder returns the geocoder chain. Google is asked first when a map
// key is configured, nominatim answers otherwise.
func Geocoder(geoClient *geoinfo.GeoInfo) geo.Geocoder {
	var geocoders []geo.Geocoder
	if geoClient != nil {
		geocoders = append(geocoders, geoClient)
	}
	geocoders = append(geocoders, nominatim.New(viper.GetString("nominatim.url"), httpClient))

	return geo.NewMultipleGeocoder(geocoders...)
}

// RouteProvider returns the route provider selected by `route.provider`
func RouteProvider(geoClient *geoinfo.GeoInfo) geo.RouteProvider {
	switch viper.GetString("route.provider") {
	case ProviderGoogle:
		if geoClient != nil {
			return geoClient
		}
		log.WithField("prefix", logPrefix).Warn("google route provider needs map.key, use osrm")
	}

	return osrm.New(viper.GetString("osrm.url"), httpClient)
}

// FacilityFinder returns the facility finder selected by `facility.provider`.
// Upstream answers are cached into the hospital cache which also serves
// as the fallback.
func FacilityFinder(geoClient *geoinfo.GeoInfo, cache HospitalCache) geo.FacilityFinder {
	var upstream geo.FacilityFinder
	switch viper.GetString("facility.provider") {
	case ProviderMongo:
		return cache
	case ProviderGoogle:
		if geoClient != nil {
			upstream = geoClient
			break
		}
		log.WithField("prefix", logPrefix).Warn("google facility provider needs map.key, use overpass")
		fallthrough
	default:
		upstream = overpass.New(viper.GetString("overpass.url"), httpClient)
	}

	return geo.NewMultipleFacilityFinder(NewCachingFacilityFinder(upstream, cache), cache)
}

// CachingFacilityFinder writes every upstream answer into the cache
type CachingFacilityFinder struct {
	upstream geo.FacilityFinder
	cache    HospitalCache
}

func NewCachingFacilityFinder(upstream geo.FacilityFinder, cache HospitalCache) *CachingFacilityFinder {
	return &CachingFacilityFinder{
		upstream: upstream,
		cache:    cache,
	}
}

func (f *CachingFacilityFinder) FindFacilities(ctx context.Context, origin schema.Location, radiusMeters int) ([]schema.Hospital, error) {
	hospitals, err := f.upstream.FindFacilities(ctx, origin, radiusMeters)
	if err != nil {
		return nil, err
	}

	if err := f.cache.UpsertHospitals(hospitals); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("cache hospitals")
	}

	return hospitals, nil
}
