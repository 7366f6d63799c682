package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"leadassign/internal/model"
)

const agentsCollection = "agents"

// AgentRepository gives access to the agent roster. The pipeline itself
// only reads the active roster and appends to assignment lists, the rest
// serves roster management.
type AgentRepository interface {
	FindAll(ctx context.Context) ([]*model.Agent, error)
	FindActive(ctx context.Context) ([]*model.Agent, error)
	FindByID(ctx context.Context, id string) (*model.Agent, error)
	FindByEmail(ctx context.Context, email string) (*model.Agent, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.Agent, error)
	Create(ctx context.Context, a *model.Agent) error
	Update(ctx context.Context, a *model.Agent) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	AppendAssignments(ctx context.Context, agentID string, customers []model.AssignedCustomer) error
}

type mongoAgentRepository struct {
	agents *mongo.Collection
}

func NewMongoAgentRepository(client *mongo.Client, database string) AgentRepository {
	return &mongoAgentRepository{agents: client.Database(database).Collection(agentsCollection)}
}

func (r *mongoAgentRepository) FindAll(ctx context.Context) ([]*model.Agent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

// FindActive returns the roster snapshot used for partitioning. Oldest
// agents come first, so the round-robin order is stable between uploads.
func (r *mongoAgentRepository) FindActive(ctx context.Context) ([]*model.Agent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.find(ctx, bson.M{"isActive": true}, opts)
}

func (r *mongoAgentRepository) FindByID(ctx context.Context, id string) (*model.Agent, error) {
	var a model.Agent
	if err := r.agents.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *mongoAgentRepository) FindByEmail(ctx context.Context, email string) (*model.Agent, error) {
	var a model.Agent
	if err := r.agents.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *mongoAgentRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Agent, error) {
	if len(ids) == 0 {
		return []*model.Agent{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

func (r *mongoAgentRepository) Create(ctx context.Context, a *model.Agent) error {
	if _, err := r.agents.InsertOne(ctx, a); err != nil {
		return err
	}
	return nil
}

func (r *mongoAgentRepository) Update(ctx context.Context, a *model.Agent) error {
	update := bson.M{"$set": bson.M{
		"name":     a.Name,
		"email":    a.Email,
		"mobile":   a.Mobile,
		"isActive": a.IsActive,
	}}
	if _, err := r.agents.UpdateByID(ctx, a.ID, update); err != nil {
		return err
	}
	return nil
}

func (r *mongoAgentRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.agents.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return nil
}

func (r *mongoAgentRepository) Count(ctx context.Context) (int64, error) {
	return r.agents.CountDocuments(ctx, bson.M{})
}

// AppendAssignments atomically pushes the partition onto the agent's
// embedded assignment list. The list only grows - no dedup, no removal.
func (r *mongoAgentRepository) AppendAssignments(ctx context.Context, agentID string, customers []model.AssignedCustomer) error {
	if len(customers) == 0 {
		return nil
	}

	update := bson.M{"$push": bson.M{"assignedCustomers": bson.M{"$each": customers}}}
	if _, err := r.agents.UpdateByID(ctx, agentID, update); err != nil {
		return err
	}
	return nil
}

func (r *mongoAgentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Agent, error) {
	cursor, err := r.agents.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	agents := make([]*model.Agent, 0)
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}
