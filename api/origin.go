package api

import (
	"context"

	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/schema"
)

// originParams is the origin of a ranking or dispatch request. A given
// location wins over the address.
type originParams struct {
	Address  string           `json:"address"`
	Location *schema.Location `json:"location"`
}

// resolveOrigin returns the origin of the request and whether the default
// origin was used in place of an unresolved address
func (s *Server) resolveOrigin(ctx context.Context, params originParams) (schema.Location, bool) {
	if params.Location != nil {
		return *params.Location, false
	}

	origin, resolved := geo.GeocodeOrDefault(ctx, s.geocoder, params.Address, s.defaultOrigin)
	return origin, !resolved
}
