package refresh

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/emergency-api/dispatch"
	"github.com/bitmark-inc/emergency-api/external/cadence"
)

type DispatchRefreshWorker struct {
	domain     string
	dispatcher *dispatch.Dispatcher
}

func NewDispatchRefreshWorker(domain string, dispatcher *dispatch.Dispatcher) *DispatchRefreshWorker {
	return &DispatchRefreshWorker{
		domain:     domain,
		dispatcher: dispatcher,
	}
}

func (s *DispatchRefreshWorker) Register() {
	workflow.RegisterWithOptions(s.DispatchRefreshWorkflow, workflow.RegisterOptions{Name: cadence.DispatchRefreshWorkflowName})

	activity.RegisterWithOptions(s.RankHospitalsActivity, activity.RegisterOptions{Name: "RankHospitalsActivity"})
	activity.RegisterWithOptions(s.AllocatePatientsActivity, activity.RegisterOptions{Name: "AllocatePatientsActivity"})
}

func (s *DispatchRefreshWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(cadence.DispatchTaskListName, map[string]string{}),
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		s.domain,
		cadence.DispatchTaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", cadence.DispatchTaskListName))

	select {}
}
