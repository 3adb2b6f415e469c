package refresh

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/emergency-api/dispatch"
	"github.com/bitmark-inc/emergency-api/external/cadence"
	"github.com/bitmark-inc/emergency-api/schema"
)

const DispatchRefreshInterval = 5 * time.Minute

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// DispatchRefreshWorkflow ranks the hospitals around the origin and allocates
// the pending patients, either periodically or when it is signaled. A signal
// carrying a new origin moves the following passes to it.
func (s *DispatchRefreshWorker) DispatchRefreshWorkflow(ctx workflow.Context, origin schema.Location) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, cadence.DispatchRefreshSignalName)
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, DispatchRefreshInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodically dispatch refresh")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()

		var signaled schema.Location
		c.Receive(ctx, &signaled)
		if signaled != (schema.Location{}) {
			origin = signaled
		}

		logger.Info("Trigger dispatch refresh by signal",
			zap.Float64("latitude", origin.Latitude),
			zap.Float64("longitude", origin.Longitude))
	})

	selector.Select(ctx)

	var ranked []schema.RankedHospital
	if err := workflow.ExecuteActivity(ctx, s.RankHospitalsActivity, origin).Get(ctx, &ranked); err != nil {
		logger.Error("Fail to rank hospitals.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, s.DispatchRefreshWorkflow, origin)
	}

	var allocation dispatch.Allocation
	if err := workflow.ExecuteActivity(ctx, s.AllocatePatientsActivity, ranked).Get(ctx, &allocation); err != nil {
		logger.Error("Fail to allocate patients.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, s.DispatchRefreshWorkflow, origin)
	}

	logger.Info("Dispatch refreshed",
		zap.Int("hospitals", len(ranked)),
		zap.Int("added", len(allocation.Added)),
		zap.Strings("unassigned", allocation.Unassigned))

	return workflow.NewContinueAsNewError(ctx, s.DispatchRefreshWorkflow, origin)
}
