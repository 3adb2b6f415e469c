package geo

import (
	"math"

	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	EarthRadiusKm = 6371.0

	// minutes per km at an average urban speed of 30 km/h
	minutesPerKm = 2.0
)

// Haversine returns the great-circle distance between two locations in km
func Haversine(from, to schema.Location) float64 {
	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLng := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// EstimateETA derives a travel time in minutes from a distance
func EstimateETA(distanceKm float64) int {
	return int(math.Round(distanceKm * minutesPerKm))
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
