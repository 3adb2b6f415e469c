package dispatch

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	externalMocks "github.com/bitmark-inc/emergency-api/external/mocks"
	"github.com/bitmark-inc/emergency-api/geo"
	"github.com/bitmark-inc/emergency-api/mocks"
	"github.com/bitmark-inc/emergency-api/schema"
	"github.com/bitmark-inc/emergency-api/store"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	core       *mocks.MockDispatchCore
	mongo      *mocks.MockMongoStore
	facilities *externalMocks.MockFacilityFinder
	dispatcher *Dispatcher
	origin     schema.Location
	nearby     []schema.Hospital
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.core = mocks.NewMockDispatchCore(s.ctrl)
	s.mongo = mocks.NewMockMongoStore(s.ctrl)
	s.facilities = externalMocks.NewMockFacilityFinder(s.ctrl)
	s.dispatcher = NewDispatcher(s.core, s.mongo, s.facilities, geo.NewRanker(nil, 0))

	s.origin = schema.Location{Latitude: 53.3498, Longitude: -6.2603}
	s.nearby = []schema.Hospital{
		{ID: "far-emergency", Location: schema.Location{Latitude: 53.3688, Longitude: -6.2603}, IsEmergencyCapable: true},
		{ID: "near-general", Location: schema.Location{Latitude: 53.3570, Longitude: -6.2603}},
	}
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DispatcherTestSuite) TestRunAllocatesPendingPatients() {
	s.facilities.EXPECT().FindFacilities(gomock.Any(), s.origin, DefaultFacilityRadius).Return(s.nearby, nil)
	s.mongo.EXPECT().ListAssignments().Return(schema.Assignments{"p0": "near-general"}, nil)
	s.core.EXPECT().ListPendingPatients([]string{"p0"}).Return([]schema.Patient{
		{ID: "p1", IsEmergency: true},
		{ID: "p2"},
	}, nil)
	gomock.InOrder(
		s.mongo.EXPECT().ClaimAssignment("p1", "far-emergency", schema.DefaultHospitalCapacity).Return(nil),
		s.mongo.EXPECT().ClaimAssignment("p2", "near-general", schema.DefaultHospitalCapacity).Return(nil),
	)

	ranked, allocation, err := s.dispatcher.Run(context.Background(), s.origin)
	s.NoError(err)
	s.Len(ranked, 2)
	s.Equal("near-general", ranked[0].ID)
	s.True(ranked[0].Estimated)
	s.Equal(schema.Assignments{"p0": "near-general", "p1": "far-emergency", "p2": "near-general"}, allocation.Assignments)
	s.Empty(allocation.Unassigned)

	latest, ok := s.dispatcher.LatestRanking()
	s.True(ok)
	s.Equal(ranked, latest)
}

func (s *DispatcherTestSuite) TestRunReportsUnassignedPatients() {
	s.dispatcher.Capacity = 1
	s.facilities.EXPECT().FindFacilities(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.nearby[1:], nil)
	s.mongo.EXPECT().ListAssignments().Return(schema.Assignments{}, nil)
	s.core.EXPECT().ListPendingPatients([]string{}).Return([]schema.Patient{
		{ID: "p1", IsEmergency: true},
		{ID: "p2"},
		{ID: "p3"},
	}, nil)
	s.mongo.EXPECT().ClaimAssignment("p2", "near-general", 1).Return(nil)

	_, allocation, err := s.dispatcher.Run(context.Background(), s.origin)
	s.NoError(err)
	s.Equal([]string{"p1", "p3"}, allocation.Unassigned)
}

func (s *DispatcherTestSuite) TestRunFacilityError() {
	s.facilities.EXPECT().FindFacilities(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("overpass down"))

	_, _, err := s.dispatcher.Run(context.Background(), s.origin)
	s.Error(err)

	_, ok := s.dispatcher.LatestRanking()
	s.False(ok)
}

func (s *DispatcherTestSuite) TestAllocatePendingStoreError() {
	s.mongo.EXPECT().ListAssignments().Return(nil, fmt.Errorf("mongo down"))

	_, err := s.dispatcher.AllocatePending(nil)
	s.Error(err)
}

func (s *DispatcherTestSuite) TestAllocatePendingReplansRejectedClaims() {
	ranked := geo.NewRanker(nil, 0).Rank(context.Background(), s.origin, s.nearby)

	gomock.InOrder(
		s.mongo.EXPECT().ListAssignments().Return(schema.Assignments{}, nil),
		s.core.EXPECT().ListPendingPatients([]string{}).Return([]schema.Patient{
			{ID: "p1"},
			{ID: "p2"},
		}, nil),
		s.mongo.EXPECT().ClaimAssignment("p1", "near-general", schema.DefaultHospitalCapacity).Return(store.ErrHospitalFull),
		s.mongo.EXPECT().ClaimAssignment("p2", "near-general", schema.DefaultHospitalCapacity).Return(store.ErrPatientAssigned),
		s.mongo.EXPECT().ListAssignments().Return(schema.Assignments{
			"x1": "near-general", "x2": "near-general", "x3": "near-general",
			"x4": "near-general", "x5": "near-general", "p2": "near-general",
		}, nil),
		s.mongo.EXPECT().ClaimAssignment("p1", "far-emergency", schema.DefaultHospitalCapacity).Return(nil),
	)

	allocation, err := s.dispatcher.AllocatePending(ranked)
	s.NoError(err)
	s.Equal(schema.Assignments{"p1": "far-emergency"}, allocation.Added)
	s.Equal("near-general", allocation.Assignments["p2"])
	s.Equal("far-emergency", allocation.Assignments["p1"])
	s.Empty(allocation.Unassigned)
}

func (s *DispatcherTestSuite) TestAllocatePendingGivesUpAfterRepeatedRejections() {
	ranked := geo.NewRanker(nil, 0).Rank(context.Background(), s.origin, s.nearby[1:])

	s.mongo.EXPECT().ListAssignments().Return(schema.Assignments{}, nil).Times(maxClaimRounds + 1)
	s.core.EXPECT().ListPendingPatients([]string{}).Return([]schema.Patient{{ID: "p1"}}, nil)
	s.mongo.EXPECT().ClaimAssignment("p1", "near-general", gomock.Any()).Return(store.ErrHospitalFull).Times(maxClaimRounds)

	allocation, err := s.dispatcher.AllocatePending(ranked)
	s.NoError(err)
	s.Empty(allocation.Added)
	s.Equal([]string{"p1"}, allocation.Unassigned)
}

func (s *DispatcherTestSuite) TestAllocatePendingClaimError() {
	ranked := geo.NewRanker(nil, 0).Rank(context.Background(), s.origin, s.nearby)

	s.mongo.EXPECT().ListAssignments().Return(schema.Assignments{}, nil)
	s.core.EXPECT().ListPendingPatients(gomock.Any()).Return([]schema.Patient{{ID: "p1"}}, nil)
	s.mongo.EXPECT().ClaimAssignment("p1", "near-general", gomock.Any()).Return(fmt.Errorf("mongo down"))

	_, err := s.dispatcher.AllocatePending(ranked)
	s.EqualError(err, "mongo down")
}

func (s *DispatcherTestSuite) TestRankForSessionKeepsRankingOnSession() {
	s.facilities.EXPECT().FindFacilities(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.nearby, nil)

	session := NewSession("call-1")
	ranked, err := s.dispatcher.RankForSession(context.Background(), session, s.origin)
	s.NoError(err)

	latest, ok := session.Rankings().Latest()
	s.True(ok)
	s.Equal(ranked, latest)

	_, ok = s.dispatcher.LatestRanking()
	s.False(ok)
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}
