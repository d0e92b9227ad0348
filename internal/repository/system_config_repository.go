package repository

import (
	"context"
	"errors"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_system_config_repository.go -package=mocks braik-api/internal/repository SystemConfigRepository

// SystemConfigRepository stores versioned platform settings. Every write is a new row.
type SystemConfigRepository interface {
	NextVersion(ctx context.Context, key string) (int64, error)
	Insert(ctx context.Context, config *models.SystemConfig) error
	FindLatest(ctx context.Context, key string) (*models.SystemConfig, error)
	FindHistory(ctx context.Context, key string, limit int) ([]models.SystemConfig, error)
}

type systemConfigRepository struct {
	configs  *mongo.Collection
	counters *mongo.Collection
}

// NewSystemConfigRepository creates a new SystemConfigRepository.
func NewSystemConfigRepository(db *mongo.Database) SystemConfigRepository {
	return &systemConfigRepository{
		configs:  collectionWithIndexes(db, CollectionSystemConfig),
		counters: db.Collection(CollectionSystemConfigCounters),
	}
}

// NextVersion allocates the next version number for key.
func (r *systemConfigRepository) NextVersion(ctx context.Context, key string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

func (r *systemConfigRepository) Insert(ctx context.Context, config *models.SystemConfig) error {
	config.ID = primitive.NewObjectID()

	_, err := r.configs.InsertOne(ctx, config)
	return err
}

// FindLatest returns the highest version of key.
func (r *systemConfigRepository) FindLatest(ctx context.Context, key string) (*models.SystemConfig, error) {
	var config models.SystemConfig

	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	err := r.configs.FindOne(ctx, bson.M{"key": key}, opts).Decode(&config)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrConfigNotFound
		}
		return nil, err
	}

	return &config, nil
}

// FindHistory returns versions of key, newest first.
func (r *systemConfigRepository) FindHistory(ctx context.Context, key string, limit int) ([]models.SystemConfig, error) {
	if limit < 1 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.configs.Find(ctx, bson.M{"key": key}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var configs []models.SystemConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	if configs == nil {
		configs = []models.SystemConfig{}
	}

	return configs, nil
}
