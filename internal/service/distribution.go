package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"leadassign/internal/cache"
	apperrors "leadassign/internal/errors"
	"leadassign/internal/model"
	"leadassign/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// AgentIdentity is the display identity an assignment's agent id resolves
// to. An id with no matching roster entry resolves to a stub holding only
// the raw id.
type AgentIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UploaderIdentity is the display identity of the admin who uploaded
type UploaderIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

type ResolvedAssignment struct {
	Agent     AgentIdentity          `json:"agent"`
	Count     int                    `json:"count"`
	Customers []model.CustomerRecord `json:"customers"`
}

// DistributionView is a distribution event with every identifier resolved
type DistributionView struct {
	ID             string               `json:"id"`
	Filename       string               `json:"filename"`
	UploadedAt     time.Time            `json:"uploadedAt"`
	TotalCustomers int                  `json:"totalCustomers"`
	UploadedBy     *UploaderIdentity    `json:"uploadedBy"`
	Assignments    []ResolvedAssignment `json:"assignments"`
}

type DistributionPage struct {
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
	Results  []*DistributionView `json:"results"`
}

// DistributionService serves the read-only history of past distribution
// events. It never mutates the distribution or agent collections.
type DistributionService interface {
	List(ctx context.Context, filter repository.DistributionFilter, page, pageSize int) (*DistributionPage, error)
	FindByID(ctx context.Context, id string) (*DistributionView, error)
}

type distributionService struct {
	distributionRepo  repository.DistributionRepository
	distributionCache cache.DistributionCache
	agentRepo         repository.AgentRepository
	adminRepo         repository.AdminRepository
	storeTimeout      time.Duration
}

func NewDistributionService(
	distributionRepo repository.DistributionRepository,
	distributionCache cache.DistributionCache,
	agentRepo repository.AgentRepository,
	adminRepo repository.AdminRepository,
	storeTimeout time.Duration,
) DistributionService {
	return &distributionService{
		distributionRepo:  distributionRepo,
		distributionCache: distributionCache,
		agentRepo:         agentRepo,
		adminRepo:         adminRepo,
		storeTimeout:      storeTimeout,
	}
}

func (s *distributionService) List(ctx context.Context, filter repository.DistributionFilter, page, pageSize int) (*DistributionPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	docs, err := s.distributionRepo.FindFiltered(queryCtx, filter, page, pageSize)
	if err != nil {
		return nil, storageErr(err)
	}

	views, err := s.resolve(ctx, docs)
	if err != nil {
		return nil, err
	}

	return &DistributionPage{Page: page, PageSize: pageSize, Results: views}, nil
}

func (s *distributionService) FindByID(ctx context.Context, id string) (*DistributionView, error) {
	doc, err := s.distributionCache.FindByID(ctx, id)
	if err != nil {
		// cache trouble degrades to a store read
		logrus.Errorf("distribution cache lookup failed for %s - %v", id, err)
	}

	if doc == nil {
		queryCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
		defer cancel()

		doc, err = s.distributionRepo.FindByID(queryCtx, id)
		if err != nil {
			return nil, storageErr(err)
		}
		if doc == nil {
			return nil, apperrors.NewNotFoundError("distribution", id)
		}

		if err := s.distributionCache.Cache(ctx, doc); err != nil {
			logrus.Errorf("failed to cache distribution %s - %v", id, err)
		}
	}

	views, err := s.resolve(ctx, []*model.Distribution{doc})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// resolve joins the distinct agent and uploader identifiers of the given
// page onto their display identities with one batch lookup per store
func (s *distributionService) resolve(ctx context.Context, docs []*model.Distribution) ([]*DistributionView, error) {
	agentIDs := make([]string, 0)
	adminIDs := make([]string, 0)
	seenAgents := make(map[string]struct{})
	seenAdmins := make(map[string]struct{})

	for _, d := range docs {
		for _, a := range d.Assignments {
			if _, ok := seenAgents[a.AgentID]; !ok {
				seenAgents[a.AgentID] = struct{}{}
				agentIDs = append(agentIDs, a.AgentID)
			}
		}
		if d.UploadedBy != "" {
			if _, ok := seenAdmins[d.UploadedBy]; !ok {
				seenAdmins[d.UploadedBy] = struct{}{}
				adminIDs = append(adminIDs, d.UploadedBy)
			}
		}
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	agents, err := s.agentRepo.FindByIDs(queryCtx, agentIDs)
	if err != nil {
		return nil, storageErr(err)
	}

	admins, err := s.adminRepo.FindByIDs(queryCtx, adminIDs)
	if err != nil {
		return nil, storageErr(err)
	}

	agentByID := make(map[string]*model.Agent, len(agents))
	for _, a := range agents {
		agentByID[a.ID] = a
	}
	adminByID := make(map[string]*model.Admin, len(admins))
	for _, a := range admins {
		adminByID[a.ID] = a
	}

	views := make([]*DistributionView, 0, len(docs))
	for _, d := range docs {
		view := &DistributionView{
			ID:             d.ID,
			Filename:       d.Filename,
			UploadedAt:     d.UploadedAt,
			TotalCustomers: d.TotalCustomers,
			Assignments:    make([]ResolvedAssignment, 0, len(d.Assignments)),
		}

		if d.UploadedBy != "" {
			uploader := &UploaderIdentity{ID: d.UploadedBy}
			if admin, ok := adminByID[d.UploadedBy]; ok {
				uploader.Email = admin.Email
			}
			view.UploadedBy = uploader
		}

		for _, a := range d.Assignments {
			identity := AgentIdentity{ID: a.AgentID}
			if agent, ok := agentByID[a.AgentID]; ok {
				identity.Name = agent.Name
				identity.Email = agent.Email
			}
			view.Assignments = append(view.Assignments, ResolvedAssignment{
				Agent:     identity,
				Count:     a.Count,
				Customers: a.Customers,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
