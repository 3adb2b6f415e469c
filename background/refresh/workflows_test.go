package refresh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/bitmark-inc/emergency-api/dispatch"
	"github.com/bitmark-inc/emergency-api/external/cadence"
	"github.com/bitmark-inc/emergency-api/schema"
)

var (
	dublin  = schema.Location{Latitude: 53.3498, Longitude: -6.2603}
	galway  = schema.Location{Latitude: 53.2707, Longitude: -9.0568}
	rankedA = []schema.RankedHospital{
		{
			Hospital: schema.Hospital{
				ID:                 "mater",
				Name:               "Mater Misericordiae",
				IsEmergencyCapable: true,
			},
			DistanceKm: 1.2,
			ETAMinutes: 4,
		},
	}
)

type DispatchRefreshWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env    *testsuite.TestWorkflowEnvironment
	worker *DispatchRefreshWorker
}

func (ts *DispatchRefreshWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.worker = NewDispatchRefreshWorker("test", nil)
}

func (ts *DispatchRefreshWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

// TestDispatchRefreshWorkflowByTimer tests a periodic pass at the given origin
func (ts *DispatchRefreshWorkflowTestSuite) TestDispatchRefreshWorkflowByTimer() {
	ts.env.OnActivity(ts.worker.RankHospitalsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, origin schema.Location) ([]schema.RankedHospital, error) {
			ts.Equal(dublin, origin)
			return rankedA, nil
		}).Once()

	ts.env.OnActivity(ts.worker.AllocatePatientsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, ranked []schema.RankedHospital) (*dispatch.Allocation, error) {
			ts.Len(ranked, 1)
			ts.Equal("mater", ranked[0].ID)
			return &dispatch.Allocation{
				Assignments: schema.Assignments{"p1": "mater"},
				Added:       schema.Assignments{"p1": "mater"},
				Unassigned:  []string{},
			}, nil
		}).Once()

	ts.env.ExecuteWorkflow(ts.worker.DispatchRefreshWorkflow, dublin)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
	ts.env.AssertExpectations(ts.T())
}

// TestDispatchRefreshWorkflowBySignal tests a signal moving the origin
func (ts *DispatchRefreshWorkflowTestSuite) TestDispatchRefreshWorkflowBySignal() {
	ts.env.RegisterDelayedCallback(func() {
		ts.env.SignalWorkflow(cadence.DispatchRefreshSignalName, galway)
	}, time.Second)

	ts.env.OnActivity(ts.worker.RankHospitalsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, origin schema.Location) ([]schema.RankedHospital, error) {
			ts.Equal(galway, origin)
			return rankedA, nil
		}).Once()

	ts.env.OnActivity(ts.worker.AllocatePatientsActivity, mock.Anything, mock.Anything).Return(
		&dispatch.Allocation{}, nil).Once()

	ts.env.ExecuteWorkflow(ts.worker.DispatchRefreshWorkflow, dublin)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
	ts.env.AssertExpectations(ts.T())
}

// TestDispatchRefreshWorkflowEmptySignal tests a signal without an origin keeps the current one
func (ts *DispatchRefreshWorkflowTestSuite) TestDispatchRefreshWorkflowEmptySignal() {
	ts.env.RegisterDelayedCallback(func() {
		ts.env.SignalWorkflow(cadence.DispatchRefreshSignalName, schema.Location{})
	}, time.Second)

	ts.env.OnActivity(ts.worker.RankHospitalsActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, origin schema.Location) ([]schema.RankedHospital, error) {
			ts.Equal(dublin, origin)
			return rankedA, nil
		}).Once()

	ts.env.OnActivity(ts.worker.AllocatePatientsActivity, mock.Anything, mock.Anything).Return(
		&dispatch.Allocation{}, nil).Once()

	ts.env.ExecuteWorkflow(ts.worker.DispatchRefreshWorkflow, dublin)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
}

// TestDispatchRefreshWorkflowRankFailed tests allocation is skipped when ranking fails
func (ts *DispatchRefreshWorkflowTestSuite) TestDispatchRefreshWorkflowRankFailed() {
	ts.env.OnActivity(ts.worker.RankHospitalsActivity, mock.Anything, mock.Anything).Return(
		nil, errors.New("overpass unavailable")).Once()

	ts.env.ExecuteWorkflow(ts.worker.DispatchRefreshWorkflow, dublin)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
	ts.env.AssertNotCalled(ts.T(), "AllocatePatientsActivity", mock.Anything, mock.Anything)
}

// TestDispatchRefreshWorkflowAllocateFailed tests the workflow continues after an allocation failure
func (ts *DispatchRefreshWorkflowTestSuite) TestDispatchRefreshWorkflowAllocateFailed() {
	ts.env.OnActivity(ts.worker.RankHospitalsActivity, mock.Anything, mock.Anything).Return(
		rankedA, nil).Once()
	ts.env.OnActivity(ts.worker.AllocatePatientsActivity, mock.Anything, mock.Anything).Return(
		nil, errors.New("mongo down")).Once()

	ts.env.ExecuteWorkflow(ts.worker.DispatchRefreshWorkflow, dublin)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.EqualError(ts.env.GetWorkflowError(), "ContinueAsNew")
	ts.env.AssertExpectations(ts.T())
}

func TestDispatchRefreshWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchRefreshWorkflowTestSuite))
}
