package repository

import (
	"context"
	"errors"
	"time"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_impersonation_repository.go -package=mocks braik-api/internal/repository ImpersonationRepository

// ImpersonationRepository stores admin impersonation sessions.
type ImpersonationRepository interface {
	Create(ctx context.Context, session *models.ImpersonationSession) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*models.ImpersonationSession, error)
	Deactivate(ctx context.Context, id primitive.ObjectID, endedAt time.Time) (bool, error)
	FindActive(ctx context.Context, now time.Time) ([]models.ImpersonationSession, error)
}

type impersonationRepository struct {
	collection *mongo.Collection
}

// NewImpersonationRepository creates a new ImpersonationRepository.
func NewImpersonationRepository(db *mongo.Database) ImpersonationRepository {
	return &impersonationRepository{
		collection: collectionWithIndexes(db, CollectionImpersonationSessions),
	}
}

func (r *impersonationRepository) Create(ctx context.Context, session *models.ImpersonationSession) error {
	session.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

// FindByTokenHash returns the session for a hashed token regardless of state.
func (r *impersonationRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*models.ImpersonationSession, error) {
	var session models.ImpersonationSession

	err := r.collection.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrImpersonationInvalid
		}
		return nil, err
	}

	return &session, nil
}

// Deactivate ends an active session. It reports whether this call did the
// transition, so concurrent enders see exactly one true.
func (r *impersonationRepository) Deactivate(ctx context.Context, id primitive.ObjectID, endedAt time.Time) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "active": true},
		bson.M{"$set": bson.M{"active": false, "endedAt": endedAt}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// FindActive lists sessions that are active and unexpired at now.
func (r *impersonationRepository) FindActive(ctx context.Context, now time.Time) ([]models.ImpersonationSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{
		"active":    true,
		"expiresAt": bson.M{"$gt": now},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.ImpersonationSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}

	if sessions == nil {
		sessions = []models.ImpersonationSession{}
	}

	return sessions, nil
}
