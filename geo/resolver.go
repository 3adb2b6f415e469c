package geo

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/emergency-api/schema"
)

const logPrefix = "geo"

var (
	ErrNoGeoInfoFound   = fmt.Errorf("no geo information found")
	ErrNoFacilityFinder = fmt.Errorf("no facility finder")
)

// DefaultLocation is used when an address can not be resolved (Dublin city centre)
var DefaultLocation = schema.Location{
	Latitude:  53.3498,
	Longitude: -6.2603,
}

// Geocoder resolves an address into a location. It returns
// ErrNoGeoInfoFound if the address is unknown.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (schema.Location, error)
}

// FacilityFinder looks up hospitals around a location
type FacilityFinder interface {
	FindFacilities(ctx context.Context, origin schema.Location, radiusMeters int) ([]schema.Hospital, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// MultipleGeocoder tries each geocoder in order and returns the first answer
type MultipleGeocoder struct {
	geocoders []Geocoder
}

func NewMultipleGeocoder(geocoders ...Geocoder) *MultipleGeocoder {
	return &MultipleGeocoder{
		geocoders: geocoders,
	}
}

func (r *MultipleGeocoder) Geocode(ctx context.Context, address string) (schema.Location, error) {
	var errors []error
	for _, g := range r.geocoders {
		result, err := g.Geocode(ctx, address)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	if len(errors) == 0 {
		return schema.Location{}, ErrNoGeoInfoFound
	}

	return schema.Location{}, NewMultipleResolverErrors(errors)
}

// GeocodeOrDefault resolves an address and falls back to the given
// location when it can not. The boolean reports whether the address
// was resolved.
func GeocodeOrDefault(ctx context.Context, g Geocoder, address string, fallback schema.Location) (schema.Location, bool) {
	if g == nil || strings.TrimSpace(address) == "" {
		return fallback, false
	}

	loc, err := g.Geocode(ctx, address)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"address": address,
			"error":   err,
		}).Warn("geocode failed, use default location")
		return fallback, false
	}

	return loc, true
}

// MultipleFacilityFinder asks each finder in order and returns the first
// successful answer
type MultipleFacilityFinder struct {
	finders []FacilityFinder
}

func NewMultipleFacilityFinder(finders ...FacilityFinder) *MultipleFacilityFinder {
	return &MultipleFacilityFinder{
		finders: finders,
	}
}

func (r *MultipleFacilityFinder) FindFacilities(ctx context.Context, origin schema.Location, radiusMeters int) ([]schema.Hospital, error) {
	var errors []error
	for _, f := range r.finders {
		hospitals, err := f.FindFacilities(ctx, origin, radiusMeters)
		if err != nil {
			errors = append(errors, err)
			continue
		}
		return hospitals, nil
	}

	if len(errors) == 0 {
		return nil, ErrNoFacilityFinder
	}

	return nil, NewMultipleResolverErrors(errors)
}
