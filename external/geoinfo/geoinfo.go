package geoinfo

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second

	emergencyKeyword = "emergency"
)

// GeoInfo serves geocoding, routing and hospital lookups from google maps
type GeoInfo struct {
	client *maps.Client
}

// New - new GeoInfo with google maps client options
func New(apiKey string, options ...maps.ClientOption) (*GeoInfo, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, options...)...)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &GeoInfo{
		client: client,
	}, nil
}

// Geocode resolves an address into a location
func (g *GeoInfo) Geocode(ctx context.Context, address string) (schema.Location, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Debug("query geocode")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "en",
	})
	if err != nil {
		if strings.Contains(err.Error(), "ZERO_RESULTS") {
			return schema.Location{}, geo.ErrNoGeoInfoFound
		}
		return schema.Location{}, err
	}

	if len(geos) == 0 {
		return schema.Location{}, geo.ErrNoGeoInfoFound
	}

	return schema.Location{
		Latitude:  geos[0].Geometry.Location.Lat,
		Longitude: geos[0].Geometry.Location.Lng,
	}, nil
}

// Route queries the driving route between two locations
func (g *GeoInfo) Route(ctx context.Context, from, to schema.Location) (schema.Route, error) {
	origin, destination := latLng(from), latLng(to)
	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin.String(),
		Destination: destination.String(),
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return schema.Route{}, err
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return schema.Route{}, geo.ErrInvalidRoute
	}

	var meters int
	var duration time.Duration
	for _, leg := range routes[0].Legs {
		meters += leg.Meters
		duration += leg.Duration
	}

	return schema.Route{
		DistanceKm:      float64(meters) / 1000,
		DurationMinutes: duration.Minutes(),
	}, nil
}

// FindFacilities lists hospitals around a location. Places which also
// match the emergency keyword are marked emergency capable.
func (g *GeoInfo) FindFacilities(ctx context.Context, origin schema.Location, radiusMeters int) ([]schema.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	location := latLng(origin)
	resp, err := g.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &location,
		Radius:   uint(radiusMeters),
		Type:     maps.PlaceTypeHospital,
	})
	if err != nil {
		return nil, err
	}

	emergencyPlaces := make(map[string]struct{})
	emergencyResp, err := g.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &location,
		Radius:   uint(radiusMeters),
		Type:     maps.PlaceTypeHospital,
		Keyword:  emergencyKeyword,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("query emergency hospitals")
	} else {
		for _, p := range emergencyResp.Results {
			emergencyPlaces[p.PlaceID] = struct{}{}
		}
	}

	hospitals := make([]schema.Hospital, 0, len(resp.Results))
	for _, p := range resp.Results {
		if p.Name == "" {
			continue
		}
		_, capable := emergencyPlaces[p.PlaceID]
		hospitals = append(hospitals, schema.Hospital{
			ID:   p.PlaceID,
			Name: p.Name,
			Location: schema.Location{
				Latitude:  p.Geometry.Location.Lat,
				Longitude: p.Geometry.Location.Lng,
			},
			IsEmergencyCapable: capable,
			Address:            p.Vicinity,
		})
	}

	return hospitals, nil
}

func latLng(l schema.Location) maps.LatLng {
	return maps.LatLng{
		Lat: l.Latitude,
		Lng: l.Longitude,
	}
}
