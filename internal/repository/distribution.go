package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"leadassign/internal/model"
)

const distributionsCollection = "distributions"

// DistributionFilter narrows the history listing. Zero values mean the
// dimension is not filtered, date bounds are inclusive.
type DistributionFilter struct {
	Filename string
	From     *time.Time
	To       *time.Time
	AgentID  string
}

// DistributionRepository persists and queries the append-only audit trail
// of distribution events
type DistributionRepository interface {
	Create(ctx context.Context, d *model.Distribution) error
	FindByID(ctx context.Context, id string) (*model.Distribution, error)
	FindFiltered(ctx context.Context, filter DistributionFilter, page, pageSize int) ([]*model.Distribution, error)
}

type mongoDistributionRepository struct {
	distributions *mongo.Collection
}

func NewMongoDistributionRepository(client *mongo.Client, database string) DistributionRepository {
	return &mongoDistributionRepository{distributions: client.Database(database).Collection(distributionsCollection)}
}

func (r *mongoDistributionRepository) Create(ctx context.Context, d *model.Distribution) error {
	if _, err := r.distributions.InsertOne(ctx, d); err != nil {
		return err
	}
	return nil
}

func (r *mongoDistributionRepository) FindByID(ctx context.Context, id string) (*model.Distribution, error) {
	var d model.Distribution
	if err := r.distributions.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// FindFiltered returns one history page sorted by upload time descending.
// Page numbering starts at 1.
func (r *mongoDistributionRepository) FindFiltered(ctx context.Context, filter DistributionFilter, page, pageSize int) ([]*model.Distribution, error) {
	query := bson.M{}

	if filter.Filename != "" {
		query["filename"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Filename), Options: "i"}}
	}

	if filter.From != nil || filter.To != nil {
		uploadedAt := bson.M{}
		if filter.From != nil {
			uploadedAt["$gte"] = *filter.From
		}
		if filter.To != nil {
			uploadedAt["$lte"] = *filter.To
		}
		query["uploadedAt"] = uploadedAt
	}

	if filter.AgentID != "" {
		query["assignments.agentId"] = filter.AgentID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "uploadedAt", Value: -1}}).
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.distributions.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]*model.Distribution, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
