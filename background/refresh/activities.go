package refresh

import (
	"context"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/bitmark-inc/emergency-api/dispatch"
	"github.com/bitmark-inc/emergency-api/schema"
)

// RankHospitalsActivity ranks the hospitals around the origin. A ranking
// superseded by a newer pass is still returned.
func (s *DispatchRefreshWorker) RankHospitalsActivity(ctx context.Context, origin schema.Location) ([]schema.RankedHospital, error) {
	logger := activity.GetLogger(ctx)

	ranked, err := s.dispatcher.RankHospitals(ctx, origin)
	if err != nil {
		if err != dispatch.ErrStaleRanking {
			return nil, err
		}
		logger.Warn("ranking superseded", zap.Int("hospitals", len(ranked)))
	}

	return ranked, nil
}

// AllocatePatientsActivity allocates the pending patients to the ranked hospitals
func (s *DispatchRefreshWorker) AllocatePatientsActivity(ctx context.Context, ranked []schema.RankedHospital) (*dispatch.Allocation, error) {
	allocation, err := s.dispatcher.AllocatePending(ranked)
	if err != nil {
		return nil, err
	}

	activity.GetLogger(ctx).Info("patients allocated",
		zap.Int("added", len(allocation.Added)),
		zap.Int("unassigned", len(allocation.Unassigned)))

	return &allocation, nil
}
