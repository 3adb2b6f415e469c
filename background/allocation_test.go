package background

import (
	"errors"
	"os"
	"testing"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/config"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/emergency-api/dispatch"
	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/mocks"
	"github.com/bitmark-inc/emergency-api/schema"
)

var dublin = schema.Location{Latitude: 53.3498, Longitude: -6.2603}

type AllocationTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	coreMock  *mocks.MockDispatchCore
	mongoMock *mocks.MockMongoStore
	manager   *BackgroundManager
}

func (s *AllocationTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.coreMock = mocks.NewMockDispatchCore(s.mockCtrl)
	s.mongoMock = mocks.NewMockMongoStore(s.mockCtrl)

	d := dispatch.NewDispatcher(s.coreMock, s.mongoMock, s.mongoMock, geo.NewRanker(nil, 0))
	s.manager = New(d, nil)
}

func (s *AllocationTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AllocationTestSuite) TestAllocatePending() {
	mater := schema.Hospital{
		ID:                 "mater",
		Location:           schema.Location{Latitude: 53.3600, Longitude: -6.2680},
		IsEmergencyCapable: true,
	}

	s.mongoMock.EXPECT().
		FindFacilities(gomock.Any(), gomock.Eq(dublin), gomock.Eq(dispatch.DefaultFacilityRadius)).
		Return([]schema.Hospital{mater}, nil)
	s.mongoMock.EXPECT().ListAssignments().Return(schema.Assignments{}, nil)
	s.coreMock.EXPECT().ListPendingPatients(gomock.Eq([]string{})).
		Return([]schema.Patient{{ID: "p1", IsEmergency: true}}, nil)
	s.mongoMock.EXPECT().
		ClaimAssignment("p1", "mater", schema.DefaultHospitalCapacity).
		Return(nil)

	s.NoError(s.manager.AllocatePending(dublin.Latitude, dublin.Longitude))
}

func (s *AllocationTestSuite) TestAllocatePendingLookupFailed() {
	s.mongoMock.EXPECT().
		FindFacilities(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("mongo down"))

	s.EqualError(s.manager.AllocatePending(dublin.Latitude, dublin.Longitude), "mongo down")
}

func (s *AllocationTestSuite) TestRegisterTasks() {
	redisURI := os.Getenv("REDIS_TEST_URI")
	if redisURI == "" {
		s.T().Skip("REDIS_TEST_URI is not set")
	}

	taskServer, err := machinery.NewServer(&config.Config{
		Broker:        redisURI,
		DefaultQueue:  "emergency_background_test",
		ResultBackend: redisURI,
	})
	s.NoError(err)

	s.manager.taskServer = taskServer
	s.NoError(s.manager.RegisterTasks())
	s.True(taskServer.IsTaskRegistered(AllocatePendingTask))
}

func TestAllocationTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationTestSuite))
}
