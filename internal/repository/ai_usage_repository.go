package repository

import (
	"context"
	"errors"
	"time"

	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_ai_usage_repository.go -package=mocks braik-api/internal/repository AIUsageRepository

// AIUsageRepository stores weighted AI usage events and per-season aggregates.
type AIUsageRepository interface {
	InsertRecord(ctx context.Context, record *models.AIUsageRecord) error
	Increment(ctx context.Context, teamID primitive.ObjectID, seasonYear int, weightedTokens int64, at time.Time) (*models.AIUsage, error)
	Find(ctx context.Context, teamID primitive.ObjectID, seasonYear int) (*models.AIUsage, error)
}

type aiUsageRepository struct {
	usage   *mongo.Collection
	records *mongo.Collection
}

// NewAIUsageRepository creates a new AIUsageRepository.
func NewAIUsageRepository(db *mongo.Database) AIUsageRepository {
	return &aiUsageRepository{
		usage:   collectionWithIndexes(db, CollectionAIUsage),
		records: collectionWithIndexes(db, CollectionAIUsageRecords),
	}
}

// InsertRecord appends a usage event.
func (r *aiUsageRepository) InsertRecord(ctx context.Context, record *models.AIUsageRecord) error {
	record.ID = primitive.NewObjectID()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := r.records.InsertOne(ctx, record)
	return err
}

// Increment atomically adds to the (team, season) aggregate, creating it on first use.
func (r *aiUsageRepository) Increment(ctx context.Context, teamID primitive.ObjectID, seasonYear int, weightedTokens int64, at time.Time) (*models.AIUsage, error) {
	var usage models.AIUsage

	err := r.usage.FindOneAndUpdate(ctx,
		bson.M{"teamId": teamID, "seasonYear": seasonYear},
		bson.M{
			"$inc": bson.M{"tokensUsed": weightedTokens, "requestsCount": int64(1)},
			"$set": bson.M{"updatedAt": at},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&usage)
	if err != nil {
		return nil, err
	}

	return &usage, nil
}

// Find returns the aggregate for a season. A team with no usage yet gets a zero aggregate.
func (r *aiUsageRepository) Find(ctx context.Context, teamID primitive.ObjectID, seasonYear int) (*models.AIUsage, error) {
	var usage models.AIUsage

	err := r.usage.FindOne(ctx, bson.M{"teamId": teamID, "seasonYear": seasonYear}).Decode(&usage)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.AIUsage{TeamID: teamID, SeasonYear: seasonYear}, nil
		}
		return nil, err
	}

	return &usage, nil
}
