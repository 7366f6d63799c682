package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	apperrors "leadassign/internal/errors"
	"leadassign/internal/model"
	rpsMocks "leadassign/internal/repository/mocks"
)

const (
	testMaxPayloadSize = 1 << 20
	testStoreTimeout   = time.Second
)

var testUploadCSV = []byte(
	"FirstName,Phone,Notes\n" +
		"c0,100,\n" +
		"c1,101,\n" +
		"c2,102,\n" +
		"c3,103,\n" +
		"c4,104,\n" +
		"c5,105,follow up\n" +
		"c6,106,\n",
)

type uploadTestData struct {
	ctx        context.Context
	uploadedBy string
	agents     []*model.Agent
}

type uploadServiceTestSuite struct {
	suite.Suite
	uploadSvc UploadService
	agentRps  *rpsMocks.AgentRepository
	distRps   *rpsMocks.DistributionRepository
	testData  *uploadTestData
}

func (s *uploadServiceTestSuite) SetupSuite() {
	s.testData = &uploadTestData{
		ctx:        context.Background(),
		uploadedBy: "0b9bcc51-9ba7-4a36-bc89-1d2f8954c4a9",
		agents: []*model.Agent{
			{
				ID:                "e4a0ffe9-3063-42b1-9e28-97d2df2a5a0e",
				Name:              "Alice",
				Email:             "alice@leadassign.io",
				IsActive:          true,
				AssignedCustomers: []model.AssignedCustomer{},
			},
			{
				ID:       "b64ab56f-e1e9-4dea-bb15-1abafdbf110d",
				Name:     "Bob",
				Email:    "bob@leadassign.io",
				IsActive: true,
				AssignedCustomers: []model.AssignedCustomer{
					{CustomerRecord: model.CustomerRecord{FirstName: "old", Phone: "0"}},
				},
			},
			{
				ID:                "8b8db902-8b2c-48b9-9911-53712501f7c7",
				Name:              "Carol",
				Email:             "carol@leadassign.io",
				IsActive:          true,
				AssignedCustomers: []model.AssignedCustomer{},
			},
		},
	}
}

func (s *uploadServiceTestSuite) SetupTest() {
	t := s.T()
	s.agentRps = rpsMocks.NewAgentRepository(t)
	s.distRps = rpsMocks.NewDistributionRepository(t)
	s.uploadSvc = NewUploadService(s.agentRps, s.distRps, testMaxPayloadSize, testStoreTimeout)
}

func (s *uploadServiceTestSuite) TestDistributePayloadTooLarge() {
	svc := NewUploadService(s.agentRps, s.distRps, 10, testStoreTimeout)

	s.T().Log("oversized payload must be rejected before any store access")
	{
		_, err := svc.Distribute(s.testData.ctx, "leads.csv", testUploadCSV, s.testData.uploadedBy)
		s.Assert().ErrorIs(err, apperrors.ErrPayloadTooLarge)
		s.agentRps.AssertNotCalled(s.T(), "FindActive", mock.Anything)
	}
}

func (s *uploadServiceTestSuite) TestDistributeNoActiveAgents() {
	s.agentRps.On("FindActive", mock.Anything).Return([]*model.Agent{}, nil).Once()

	s.T().Log("empty roster must abort the pipeline before extraction")
	{
		_, err := s.uploadSvc.Distribute(s.testData.ctx, "leads.csv", testUploadCSV, s.testData.uploadedBy)
		s.Assert().ErrorIs(err, apperrors.ErrNoActiveAgents)
		s.agentRps.AssertNotCalled(s.T(), "AppendAssignments", mock.Anything, mock.Anything, mock.Anything)
		s.distRps.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}
}

func (s *uploadServiceTestSuite) TestDistributeRosterReadTimeout() {
	s.agentRps.On("FindActive", mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	s.T().Log("roster read timeout must surface as storage timeout")
	{
		_, err := s.uploadSvc.Distribute(s.testData.ctx, "leads.csv", testUploadCSV, s.testData.uploadedBy)
		s.Assert().ErrorIs(err, apperrors.ErrStorageTimeout)
	}
}

func (s *uploadServiceTestSuite) TestDistributeUnsupportedFormat() {
	s.agentRps.On("FindActive", mock.Anything).Return(s.testData.agents, nil).Once()

	s.T().Log("unsupported extension must fail without writing anything")
	{
		_, err := s.uploadSvc.Distribute(s.testData.ctx, "leads.pdf", testUploadCSV, s.testData.uploadedBy)
		var unsupportedErr *apperrors.UnsupportedFormatError
		s.Assert().ErrorAs(err, &unsupportedErr)
		s.agentRps.AssertNotCalled(s.T(), "AppendAssignments", mock.Anything, mock.Anything, mock.Anything)
	}
}

func (s *uploadServiceTestSuite) TestDistributeNoValidRecords() {
	s.agentRps.On("FindActive", mock.Anything).Return(s.testData.agents, nil).Once()

	s.T().Log("file with only empty rows must not produce a distribution")
	{
		content := []byte("FirstName,Phone,Notes\n,,\n , ,note only\n")
		_, err := s.uploadSvc.Distribute(s.testData.ctx, "leads.csv", content, s.testData.uploadedBy)
		s.Assert().ErrorIs(err, apperrors.ErrNoValidRecords)
		s.distRps.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}
}

func (s *uploadServiceTestSuite) TestDistributeSuccessfully() {
	agents := s.testData.agents

	var captured *model.Distribution
	s.agentRps.On("FindActive", mock.Anything).Return(agents, nil).Once()
	for _, a := range agents {
		s.agentRps.On("AppendAssignments", mock.Anything, a.ID, mock.AnythingOfType("[]model.AssignedCustomer")).Return(nil).Once()
	}
	s.distRps.On("Create", mock.Anything, mock.AnythingOfType("*model.Distribution")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Distribution) }).
		Return(nil).Once()

	s.T().Log("7 customers across 3 agents must be distributed 3/2/2")
	{
		result, err := s.uploadSvc.Distribute(s.testData.ctx, "leads.csv", testUploadCSV, s.testData.uploadedBy)
		s.Require().NoError(err)

		s.Assert().Equal(7, result.TotalCustomers)
		s.Assert().Equal(3, result.TotalAgents)
		s.Assert().Empty(result.FailedAgents)
		s.Require().NotNil(result.DistributionID, "audit record persisted, so its id must be returned")

		s.Require().Len(result.Distribution, 3)
		s.Assert().Equal(3, result.Distribution[0].Assigned)
		s.Assert().Equal(2, result.Distribution[1].Assigned)
		s.Assert().Equal(2, result.Distribution[2].Assigned)
		s.Assert().Equal(3, result.Distribution[0].Total)
		s.Assert().Equal(3, result.Distribution[1].Total, "pre-existing assignments must count towards the total")

		s.Require().NotNil(captured)
		s.Assert().Equal(*result.DistributionID, captured.ID)
		s.Assert().Equal("leads.csv", captured.Filename)
		s.Assert().Equal(s.testData.uploadedBy, captured.UploadedBy)
		s.Assert().Equal(7, captured.TotalCustomers)
		s.Require().Len(captured.Assignments, 3)
		s.Assert().Equal(agents[0].ID, captured.Assignments[0].AgentID)
		s.Assert().Equal(3, captured.Assignments[0].Count)
		s.Assert().Equal("c0", captured.Assignments[0].Customers[0].FirstName)
		s.Assert().Equal("c1", captured.Assignments[1].Customers[0].FirstName)
	}
}

func (s *uploadServiceTestSuite) TestDistributePartialFailure() {
	agents := s.testData.agents
	failing := agents[1]

	s.agentRps.On("FindActive", mock.Anything).Return(agents, nil).Once()
	for _, a := range agents {
		err := error(nil)
		if a.ID == failing.ID {
			err = errors.New("write failed")
		}
		s.agentRps.On("AppendAssignments", mock.Anything, a.ID, mock.AnythingOfType("[]model.AssignedCustomer")).Return(err).Once()
	}
	s.distRps.On("Create", mock.Anything, mock.AnythingOfType("*model.Distribution")).Return(nil).Once()

	s.T().Log("one failed append must not fail the upload nor roll back the others")
	{
		result, err := s.uploadSvc.Distribute(s.testData.ctx, "leads.csv", testUploadCSV, s.testData.uploadedBy)
		s.Require().NoError(err)

		s.Assert().Equal([]string{failing.ID}, result.FailedAgents)
		s.Assert().NotNil(result.DistributionID)
		s.Assert().Equal(2, result.Distribution[1].Assigned, "the intended share is still reported")
		s.Assert().Equal(1, result.Distribution[1].Total, "failed append must not count towards the total")
		s.distRps.AssertCalled(s.T(), "Create", mock.Anything, mock.AnythingOfType("*model.Distribution"))
	}
}

func (s *uploadServiceTestSuite) TestDistributeAuditRecordFailure() {
	agents := s.testData.agents

	s.agentRps.On("FindActive", mock.Anything).Return(agents, nil).Once()
	for _, a := range agents {
		s.agentRps.On("AppendAssignments", mock.Anything, a.ID, mock.AnythingOfType("[]model.AssignedCustomer")).Return(nil).Once()
	}
	s.distRps.On("Create", mock.Anything, mock.AnythingOfType("*model.Distribution")).Return(errors.New("insert failed")).Once()

	s.T().Log("lost audit record degrades to a nil distribution id")
	{
		result, err := s.uploadSvc.Distribute(s.testData.ctx, "leads.csv", testUploadCSV, s.testData.uploadedBy)
		s.Require().NoError(err)

		s.Assert().Nil(result.DistributionID)
		s.Assert().Empty(result.FailedAgents)
		s.Assert().Equal(7, result.TotalCustomers)
	}
}

// start upload service test suite
func TestUploadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(uploadServiceTestSuite))
}
