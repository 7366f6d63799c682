package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "leadassign/internal/errors"
	"leadassign/internal/model"
	"leadassign/internal/repository"
)

// maxAgents is an owner-level business rule, not a scaling limit
const maxAgents = 5

// NewAgent carries the data for a roster entry to be created
type NewAgent struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// UpdateAgent carries a partial roster update, nil fields stay untouched
type UpdateAgent struct {
	ID       string
	Name     *string
	Email    *string
	Mobile   *string
	IsActive *bool
}

// AgentAssignmentsSnapshot is the current assignment state of one agent
type AgentAssignmentsSnapshot struct {
	AgentID        string                   `json:"agentId"`
	AgentName      string                   `json:"agentName"`
	AgentEmail     string                   `json:"agentEmail"`
	TotalCustomers int                      `json:"totalCustomers"`
	Customers      []model.AssignedCustomer `json:"customers"`
}

// AgentService manages the agent roster. The distribution pipeline treats
// it as a collaborator and only consumes the active-roster read.
type AgentService interface {
	FindAll(ctx context.Context) ([]*model.Agent, error)
	FindByID(ctx context.Context, id string) (*model.Agent, error)
	Create(ctx context.Context, na NewAgent) (*model.Agent, error)
	Update(ctx context.Context, ua UpdateAgent) (*model.Agent, error)
	DeleteByID(ctx context.Context, id string) error
	AssignmentsSnapshot(ctx context.Context) ([]AgentAssignmentsSnapshot, error)
}

type agentService struct {
	agentRepo    repository.AgentRepository
	storeTimeout time.Duration
}

func NewAgentService(agentRepo repository.AgentRepository, storeTimeout time.Duration) AgentService {
	return &agentService{agentRepo: agentRepo, storeTimeout: storeTimeout}
}

func (s *agentService) FindAll(ctx context.Context) ([]*model.Agent, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	agents, err := s.agentRepo.FindAll(queryCtx)
	if err != nil {
		return nil, storageErr(err)
	}
	return agents, nil
}

func (s *agentService) FindByID(ctx context.Context, id string) (*model.Agent, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	agent, err := s.agentRepo.FindByID(queryCtx, id)
	if err != nil {
		return nil, storageErr(err)
	}
	if agent == nil {
		return nil, apperrors.NewNotFoundError("agent", id)
	}
	return agent, nil
}

func (s *agentService) Create(ctx context.Context, na NewAgent) (*model.Agent, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	email := strings.ToLower(na.Email)

	existing, err := s.agentRepo.FindByEmail(queryCtx, email)
	if err != nil {
		return nil, storageErr(err)
	}
	if existing != nil {
		return nil, &apperrors.DuplicateEmailError{Email: email}
	}

	count, err := s.agentRepo.Count(queryCtx)
	if err != nil {
		return nil, storageErr(err)
	}
	if count >= maxAgents {
		return nil, apperrors.ErrAgentLimit
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(na.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	agent := &model.Agent{
		ID:                uuid.NewString(),
		Name:              na.Name,
		Email:             email,
		Mobile:            na.Mobile,
		PasswordHash:      string(hash),
		IsActive:          true,
		AssignedCustomers: []model.AssignedCustomer{},
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.agentRepo.Create(queryCtx, agent); err != nil {
		return nil, storageErr(err)
	}
	return agent, nil
}

func (s *agentService) Update(ctx context.Context, ua UpdateAgent) (*model.Agent, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	agent, err := s.agentRepo.FindByID(queryCtx, ua.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	if agent == nil {
		return nil, apperrors.NewNotFoundError("agent", ua.ID)
	}

	if ua.Name != nil {
		agent.Name = *ua.Name
	}
	if ua.Email != nil {
		agent.Email = strings.ToLower(*ua.Email)
	}
	if ua.Mobile != nil {
		agent.Mobile = *ua.Mobile
	}
	if ua.IsActive != nil {
		agent.IsActive = *ua.IsActive
	}

	if err := s.agentRepo.Update(queryCtx, agent); err != nil {
		return nil, storageErr(err)
	}
	return agent, nil
}

func (s *agentService) DeleteByID(ctx context.Context, id string) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	agent, err := s.agentRepo.FindByID(queryCtx, id)
	if err != nil {
		return storageErr(err)
	}
	if agent == nil {
		return apperrors.NewNotFoundError("agent", id)
	}

	if err := s.agentRepo.DeleteByID(queryCtx, id); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *agentService) AssignmentsSnapshot(ctx context.Context) ([]AgentAssignmentsSnapshot, error) {
	agents, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]AgentAssignmentsSnapshot, 0, len(agents))
	for _, a := range agents {
		snapshots = append(snapshots, AgentAssignmentsSnapshot{
			AgentID:        a.ID,
			AgentName:      a.Name,
			AgentEmail:     a.Email,
			TotalCustomers: len(a.AssignedCustomers),
			Customers:      a.AssignedCustomers,
		})
	}
	return snapshots, nil
}
