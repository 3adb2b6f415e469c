package geo

import (
	"sync"
	"time"

	"github.com/bitmark-inc/emergency-api/schema"
)

// RankingRequest identifies a ranking pass started by Tracker.Begin
type RankingRequest struct {
	Timestamp int64
}

// Tracker keeps the latest ranking of a caller which ranks repeatedly.
// A result is only published if no newer request has started since.
type Tracker struct {
	sync.Mutex
	now       func() time.Time
	requested int64
	published int64
	ranking   []schema.RankedHospital
}

func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// Begin starts a new ranking request. Timestamps are strictly increasing.
func (t *Tracker) Begin() RankingRequest {
	t.Lock()
	defer t.Unlock()

	ts := t.now().UnixNano()
	if ts <= t.requested {
		ts = t.requested + 1
	}
	t.requested = ts

	return RankingRequest{Timestamp: ts}
}

// Publish stores the ranking of a request. It returns false and drops
// the ranking if the request is stale.
func (t *Tracker) Publish(req RankingRequest, ranking []schema.RankedHospital) bool {
	t.Lock()
	defer t.Unlock()

	if req.Timestamp != t.requested || req.Timestamp <= t.published {
		return false
	}

	t.published = req.Timestamp
	t.ranking = ranking
	return true
}

// Latest returns the last published ranking
func (t *Tracker) Latest() ([]schema.RankedHospital, bool) {
	t.Lock()
	defer t.Unlock()

	if t.published == 0 {
		return nil, false
	}

	return t.ranking, true
}
