package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/bitmark-inc/emergency-api/dispatch"
)

// BackgroundManager runs the dispatch tasks queued by the api server
type BackgroundManager struct {
	dispatcher *dispatch.Dispatcher

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(dispatcher *dispatch.Dispatcher, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		dispatcher: dispatcher,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every task served by the manager
func (m *BackgroundManager) RegisterTasks() error {
	return m.taskServer.RegisterTasks(map[string]interface{}{
		AllocatePendingTask: m.AllocatePending,
	})
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("emergency-worker", 5)
	return m.worker.Launch()
}
