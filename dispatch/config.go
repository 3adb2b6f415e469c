package dispatch

import (
	"github.com/spf13/viper"

	"github.com/bitmark-inc/emergency-api/geo"
)

// NewConfiguredDispatcher creates a dispatcher using `dispatch.capacity`,
// `facility.radius` and `dispatch.route_timeout`
func NewConfiguredDispatcher(patients PatientSource, book AssignmentBook, facilities geo.FacilityFinder, routes geo.RouteProvider) *Dispatcher {
	d := NewDispatcher(patients, book, facilities,
		geo.NewRanker(routes, viper.GetDuration("dispatch.route_timeout")))

	if capacity := viper.GetInt("dispatch.capacity"); capacity > 0 {
		d.Capacity = capacity
	}
	if radius := viper.GetInt("facility.radius"); radius > 0 {
		d.Radius = radius
	}

	return d
}
