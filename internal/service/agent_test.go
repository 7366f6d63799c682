package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	apperrors "leadassign/internal/errors"
	"leadassign/internal/model"
	rpsMocks "leadassign/internal/repository/mocks"
)

type agentTestData struct {
	ctx   context.Context
	agent *model.Agent
}

type agentServiceTestSuite struct {
	suite.Suite
	agentSvc AgentService
	agentRps *rpsMocks.AgentRepository
	testData *agentTestData
}

func (s *agentServiceTestSuite) SetupSuite() {
	s.testData = &agentTestData{
		ctx: context.Background(),
		agent: &model.Agent{
			ID:                "e4a0ffe9-3063-42b1-9e28-97d2df2a5a0e",
			Name:              "Alice",
			Email:             "alice@leadassign.io",
			Mobile:            "+1555000111",
			IsActive:          true,
			AssignedCustomers: []model.AssignedCustomer{},
			CreatedAt:         time.Now().UTC(),
		},
	}
}

func (s *agentServiceTestSuite) SetupTest() {
	t := s.T()
	s.agentRps = rpsMocks.NewAgentRepository(t)
	s.agentSvc = NewAgentService(s.agentRps, testStoreTimeout)
}

func (s *agentServiceTestSuite) TestCreateSuccessfully() {
	na := NewAgent{Name: "Dave", Email: "Dave@LeadAssign.io", Mobile: "+1555000222", Password: "secret_password"}

	var captured *model.Agent
	s.agentRps.On("FindByEmail", mock.Anything, "dave@leadassign.io").Return(nil, nil).Once()
	s.agentRps.On("Count", mock.Anything).Return(int64(2), nil).Once()
	s.agentRps.On("Create", mock.Anything, mock.AnythingOfType("*model.Agent")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Agent) }).
		Return(nil).Once()

	s.T().Log("agent must be created active with hashed password and lowercased email")
	{
		agent, err := s.agentSvc.Create(s.testData.ctx, na)
		s.Require().NoError(err)

		s.Assert().Equal("dave@leadassign.io", agent.Email)
		s.Assert().True(agent.IsActive)
		s.Assert().NotNil(agent.AssignedCustomers)
		s.Assert().Empty(agent.AssignedCustomers)
		s.Assert().NoError(bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(na.Password)))
		s.Require().NotNil(captured)
		s.Assert().Equal(agent.ID, captured.ID)
	}
}

func (s *agentServiceTestSuite) TestCreateDuplicateEmail() {
	existing := s.testData.agent
	na := NewAgent{Name: "Other", Email: existing.Email, Password: "secret_password"}

	s.agentRps.On("FindByEmail", mock.Anything, existing.Email).Return(existing, nil).Once()

	s.T().Log("reserved email must be rejected")
	{
		_, err := s.agentSvc.Create(s.testData.ctx, na)
		var dupErr *apperrors.DuplicateEmailError
		s.Require().ErrorAs(err, &dupErr)
		s.Assert().Equal(existing.Email, dupErr.Email)
		s.agentRps.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}
}

func (s *agentServiceTestSuite) TestCreateRosterFull() {
	na := NewAgent{Name: "Dave", Email: "dave@leadassign.io", Password: "secret_password"}

	s.agentRps.On("FindByEmail", mock.Anything, na.Email).Return(nil, nil).Once()
	s.agentRps.On("Count", mock.Anything).Return(int64(maxAgents), nil).Once()

	s.T().Log("full roster must reject another agent")
	{
		_, err := s.agentSvc.Create(s.testData.ctx, na)
		s.Assert().ErrorIs(err, apperrors.ErrAgentLimit)
		s.agentRps.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}
}

func (s *agentServiceTestSuite) TestUpdatePartially() {
	existing := *s.testData.agent
	inactive := false
	email := "New.Alice@LeadAssign.io"
	ua := UpdateAgent{ID: existing.ID, Email: &email, IsActive: &inactive}

	s.agentRps.On("FindByID", mock.Anything, existing.ID).Return(&existing, nil).Once()
	s.agentRps.On("Update", mock.Anything, mock.AnythingOfType("*model.Agent")).Return(nil).Once()

	s.T().Log("only provided fields must be updated")
	{
		agent, err := s.agentSvc.Update(s.testData.ctx, ua)
		s.Require().NoError(err)

		s.Assert().Equal("new.alice@leadassign.io", agent.Email)
		s.Assert().False(agent.IsActive)
		s.Assert().Equal(s.testData.agent.Name, agent.Name, "untouched fields must keep their values")
		s.Assert().Equal(s.testData.agent.Mobile, agent.Mobile)
	}
}

func (s *agentServiceTestSuite) TestUpdateNotFound() {
	name := "Ghost"
	ua := UpdateAgent{ID: "461b07b5-3373-495d-b26b-d689a0c8a557", Name: &name}

	s.agentRps.On("FindByID", mock.Anything, ua.ID).Return(nil, nil).Once()

	s.T().Log("update of a missing agent must raise not found")
	{
		_, err := s.agentSvc.Update(s.testData.ctx, ua)
		var notFoundErr *apperrors.NotFoundError
		s.Assert().ErrorAs(err, &notFoundErr)
		s.agentRps.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	}
}

func (s *agentServiceTestSuite) TestDeleteByIDSuccessfully() {
	existing := s.testData.agent

	s.agentRps.On("FindByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	s.agentRps.On("DeleteByID", mock.Anything, existing.ID).Return(nil).Once()

	s.T().Log("existing agent must be deleted")
	{
		err := s.agentSvc.DeleteByID(s.testData.ctx, existing.ID)
		s.Assert().NoError(err)
	}
}

func (s *agentServiceTestSuite) TestDeleteByIDNotFound() {
	id := "461b07b5-3373-495d-b26b-d689a0c8a557"

	s.agentRps.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	s.T().Log("delete of a missing agent must raise not found")
	{
		err := s.agentSvc.DeleteByID(s.testData.ctx, id)
		var notFoundErr *apperrors.NotFoundError
		s.Assert().ErrorAs(err, &notFoundErr)
		s.agentRps.AssertNotCalled(s.T(), "DeleteByID", mock.Anything, mock.Anything)
	}
}

func (s *agentServiceTestSuite) TestFindByIDStorageTimeout() {
	id := s.testData.agent.ID

	s.agentRps.On("FindByID", mock.Anything, id).Return(nil, context.DeadlineExceeded).Once()

	s.T().Log("roster read timeout must surface as storage timeout")
	{
		_, err := s.agentSvc.FindByID(s.testData.ctx, id)
		s.Assert().ErrorIs(err, apperrors.ErrStorageTimeout)
	}
}

func (s *agentServiceTestSuite) TestAssignmentsSnapshot() {
	assigned := []model.AssignedCustomer{
		{CustomerRecord: model.CustomerRecord{FirstName: "c0", Phone: "100"}},
		{CustomerRecord: model.CustomerRecord{FirstName: "c1", Phone: "101"}},
	}
	agents := []*model.Agent{
		s.testData.agent,
		{
			ID:                "b64ab56f-e1e9-4dea-bb15-1abafdbf110d",
			Name:              "Bob",
			Email:             "bob@leadassign.io",
			AssignedCustomers: assigned,
		},
	}

	s.agentRps.On("FindAll", mock.Anything).Return(agents, nil).Once()

	s.T().Log("snapshot must report per-agent assignment state")
	{
		snapshots, err := s.agentSvc.AssignmentsSnapshot(s.testData.ctx)
		s.Require().NoError(err)
		s.Require().Len(snapshots, 2)

		s.Assert().Equal(0, snapshots[0].TotalCustomers)
		s.Assert().Equal(2, snapshots[1].TotalCustomers)
		s.Assert().Equal("Bob", snapshots[1].AgentName)
		s.Assert().Equal(assigned, snapshots[1].Customers)
	}
}

// start agent service test suite
func TestAgentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(agentServiceTestSuite))
}
