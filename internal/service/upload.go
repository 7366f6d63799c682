package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "leadassign/internal/errors"
	"leadassign/internal/model"
	"leadassign/internal/repository"
	"leadassign/internal/upload"
)

// AgentAssignmentSummary reports what one agent received from an upload
type AgentAssignmentSummary struct {
	AgentID    string `json:"agentId"`
	AgentName  string `json:"agentName"`
	AgentEmail string `json:"agentEmail"`
	Assigned   int    `json:"customersAssigned"`
	Total      int    `json:"totalCustomers"`
}

// UploadResult is the outcome of one upload-and-distribute operation.
// DistributionID is nil when the audit record could not be persisted -
// the assignment itself still succeeded. FailedAgents enumerates agents
// whose append failed so the caller can retry just those.
type UploadResult struct {
	TotalCustomers int
	TotalAgents    int
	Distribution   []AgentAssignmentSummary
	DistributionID *string
	FailedAgents   []string
}

// UploadService runs the ingestion-normalization-distribution-persistence
// pipeline for one uploaded file
type UploadService interface {
	Distribute(ctx context.Context, filename string, content []byte, uploadedBy string) (*UploadResult, error)
}

type uploadService struct {
	agentRepo        repository.AgentRepository
	distributionRepo repository.DistributionRepository
	maxPayloadSize   int64
	storeTimeout     time.Duration
}

func NewUploadService(
	agentRepo repository.AgentRepository,
	distributionRepo repository.DistributionRepository,
	maxPayloadSize int64,
	storeTimeout time.Duration,
) UploadService {
	return &uploadService{
		agentRepo:        agentRepo,
		distributionRepo: distributionRepo,
		maxPayloadSize:   maxPayloadSize,
		storeTimeout:     storeTimeout,
	}
}

func (s *uploadService) Distribute(ctx context.Context, filename string, content []byte, uploadedBy string) (*UploadResult, error) {
	if int64(len(content)) > s.maxPayloadSize {
		return nil, apperrors.ErrPayloadTooLarge
	}

	// Roster availability is checked before parsing so an upload against
	// an empty roster never wastes extraction work and writes nothing.
	rosterCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	agents, err := s.agentRepo.FindActive(rosterCtx)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(agents) == 0 {
		return nil, apperrors.ErrNoActiveAgents
	}

	rows, err := upload.Extract(content, filepath.Ext(filename))
	if err != nil {
		return nil, err
	}

	customers, err := upload.Normalize(rows)
	if err != nil {
		return nil, err
	}

	parts, err := upload.Partition(customers, len(agents))
	if err != nil {
		return nil, err
	}

	uploadedAt := time.Now().UTC()
	failed := s.fanOutAssignments(agents, parts, uploadedAt)

	// The audit record is built regardless of how the fan-out went, its
	// assignments mirror the partitions, not the write outcomes.
	distribution := &model.Distribution{
		ID:             uuid.NewString(),
		Filename:       filename,
		UploadedBy:     uploadedBy,
		UploadedAt:     uploadedAt,
		TotalCustomers: len(customers),
		Assignments:    make([]model.AssignmentPart, 0, len(agents)),
	}
	for i, agent := range agents {
		distribution.Assignments = append(distribution.Assignments, model.AssignmentPart{
			AgentID:   agent.ID,
			Customers: parts[i],
			Count:     len(parts[i]),
		})
	}

	result := &UploadResult{
		TotalCustomers: len(customers),
		TotalAgents:    len(agents),
		Distribution:   make([]AgentAssignmentSummary, 0, len(agents)),
		DistributionID: s.recordDistribution(distribution),
		FailedAgents:   failed,
	}

	failedSet := make(map[string]struct{}, len(failed))
	for _, id := range failed {
		failedSet[id] = struct{}{}
	}

	for i, agent := range agents {
		total := len(agent.AssignedCustomers)
		if _, ok := failedSet[agent.ID]; !ok {
			total += len(parts[i])
		}
		result.Distribution = append(result.Distribution, AgentAssignmentSummary{
			AgentID:    agent.ID,
			AgentName:  agent.Name,
			AgentEmail: agent.Email,
			Assigned:   len(parts[i]),
			Total:      total,
		})
	}
	return result, nil
}

// fanOutAssignments appends every non-empty partition to its agent in
// parallel and waits for all writes to settle. Agents that succeeded are
// never rolled back when others fail.
func (s *uploadService) fanOutAssignments(agents []*model.Agent, parts [][]model.CustomerRecord, assignedAt time.Time) []string {
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := make([]string, 0)

	for i, agent := range agents {
		if len(parts[i]) == 0 {
			continue
		}

		wg.Add(1)
		go func(agentID string, part []model.CustomerRecord) {
			defer wg.Done()

			assigned := make([]model.AssignedCustomer, 0, len(part))
			for _, c := range part {
				assigned = append(assigned, model.AssignedCustomer{CustomerRecord: c, AssignedAt: assignedAt})
			}

			// Detached from the request context so a caller disconnect
			// cannot leave an agent list half-written.
			ctx, cancel := context.WithTimeout(context.Background(), s.storeTimeout)
			defer cancel()

			if err := s.agentRepo.AppendAssignments(ctx, agentID, assigned); err != nil {
				logrus.Errorf("failed to append %d customer(s) to agent %s - %v", len(part), agentID, err)
				mu.Lock()
				failed = append(failed, agentID)
				mu.Unlock()
			}
		}(agent.ID, parts[i])
	}
	wg.Wait()

	if len(failed) > 0 {
		logrus.Error(&apperrors.PartialAssignmentError{AgentIDs: failed})
	}
	return failed
}

// recordDistribution persists the audit event once the fan-out settled.
// The agents already hold their customers, so losing the audit record
// degrades to a nil distribution id instead of failing the upload.
func (s *uploadService) recordDistribution(d *model.Distribution) *string {
	ctx, cancel := context.WithTimeout(context.Background(), s.storeTimeout)
	defer cancel()

	if err := s.distributionRepo.Create(ctx, d); err != nil {
		logrus.Errorf("failed to persist distribution event for %s - %v", d.Filename, err)
		return nil
	}
	return &d.ID
}

func storageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ErrStorageTimeout
	}
	return err
}
