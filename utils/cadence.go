package utils

import (
	"context"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/bitmark-inc/emergency-api/external/cadence"
	"github.com/bitmark-inc/emergency-api/schema"
)

// TriggerDispatchRefresh is a helper function to send a signal to
// trigger the workflow to rank hospitals and allocate pending patients.
// The workflow is started with the origin if it is not running.
func TriggerDispatchRefresh(client cadence.WorkflowClient, c context.Context, origin schema.Location) error {
	_, err := client.SignalWithStartWorkflow(c,
		cadence.DispatchRefreshWorkflowID, cadence.DispatchRefreshSignalName, origin,
		cadenceClient.StartWorkflowOptions{
			ID:                           cadence.DispatchRefreshWorkflowID,
			TaskList:                     cadence.DispatchTaskListName,
			ExecutionStartToCloseTimeout: time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, cadence.DispatchRefreshWorkflowName, origin)
	return err
}
