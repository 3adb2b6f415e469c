package geo

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	MaxRankedHospitals  = 5
	DefaultRouteTimeout = 5 * time.Second
)

var ErrInvalidRoute = fmt.Errorf("invalid route")

// RouteProvider answers driving route queries
type RouteProvider interface {
	Route(ctx context.Context, from, to schema.Location) (schema.Route, error)
}

// RouteProviderFunc adapts a function to RouteProvider
type RouteProviderFunc func(ctx context.Context, from, to schema.Location) (schema.Route, error)

func (f RouteProviderFunc) Route(ctx context.Context, from, to schema.Location) (schema.Route, error) {
	return f(ctx, from, to)
}

// Ranker orders hospitals by their distance from an origin
type Ranker struct {
	route   RouteProvider
	timeout time.Duration
}

// NewRanker returns a ranker. A nil provider ranks by great-circle distance only.
func NewRanker(route RouteProvider, timeout time.Duration) *Ranker {
	if timeout <= 0 {
		timeout = DefaultRouteTimeout
	}

	return &Ranker{
		route:   route,
		timeout: timeout,
	}
}

// Rank measures every candidate from the origin and returns the nearest
// MaxRankedHospitals, nearest first. Candidates with equal distance keep
// their input order. A failed route query only affects its own candidate,
// which falls back to the haversine distance.
func (r *Ranker) Rank(ctx context.Context, origin schema.Location, candidates []schema.Hospital) []schema.RankedHospital {
	ranked := make([]schema.RankedHospital, len(candidates))

	var wg sync.WaitGroup
	for i, h := range candidates {
		wg.Add(1)
		go func(i int, h schema.Hospital) {
			defer wg.Done()
			ranked[i] = r.measure(ctx, origin, h)
		}(i, h)
	}
	wg.Wait()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > MaxRankedHospitals {
		ranked = ranked[:MaxRankedHospitals]
	}

	return ranked
}

func (r *Ranker) measure(ctx context.Context, origin schema.Location, h schema.Hospital) (result schema.RankedHospital) {
	result = estimate(origin, h)
	if r.route == nil {
		return
	}

	defer func() {
		if p := recover(); p != nil {
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"hospital": h.ID,
				"panic":    p,
			}).Error("route provider panicked")
			result = estimate(origin, h)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	route, err := r.route.Route(ctx, origin, h.Location)
	if err == nil && !validRoute(route) {
		err = ErrInvalidRoute
	}
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"hospital": h.ID,
			"error":    err,
		}).Warn("route query failed, use great-circle distance")
		return
	}

	return schema.RankedHospital{
		Hospital:   h,
		DistanceKm: route.DistanceKm,
		ETAMinutes: int(math.Round(route.DurationMinutes)),
	}
}

func estimate(origin schema.Location, h schema.Hospital) schema.RankedHospital {
	d := Haversine(origin, h.Location)
	return schema.RankedHospital{
		Hospital:   h,
		DistanceKm: d,
		ETAMinutes: EstimateETA(d),
		Estimated:  true,
	}
}

func validRoute(r schema.Route) bool {
	return !math.IsNaN(r.DistanceKm) && !math.IsInf(r.DistanceKm, 0) && r.DistanceKm >= 0 &&
		!math.IsNaN(r.DurationMinutes) && !math.IsInf(r.DurationMinutes, 0) && r.DurationMinutes >= 0
}
