package background

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/emergency-api/schema"
)

const (
	// AllocatePendingTask is queued when a patient is admitted
	AllocatePendingTask = "allocate_pending"

	allocationTimeout = time.Minute
)

// AllocatePending ranks the hospitals around the given coordinate and
// allocates every pending patient to them
func (m *BackgroundManager) AllocatePending(lat, lng float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), allocationTimeout)
	defer cancel()

	origin := schema.Location{Latitude: lat, Longitude: lng}
	ranked, allocation, err := m.dispatcher.Run(ctx, origin)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": "background",
			"origin": origin,
			"error":  err,
		}).Error("allocate pending patients")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":     "background",
		"hospitals":  len(ranked),
		"added":      len(allocation.Added),
		"unassigned": allocation.Unassigned,
	}).Info("pending patients allocated")

	return nil
}
