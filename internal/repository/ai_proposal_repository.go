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

//go:generate mockgen -destination=mocks/mock_ai_proposal_repository.go -package=mocks braik-api/internal/repository AIProposalRepository

// AIProposalRepository stores assistant action proposals.
type AIProposalRepository interface {
	Create(ctx context.Context, proposal *models.AIActionProposal) error
	FindByID(ctx context.Context, teamID, id primitive.ObjectID) (*models.AIActionProposal, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID, status string) ([]models.AIActionProposal, error)
	Transition(ctx context.Context, teamID, id primitive.ObjectID, to string, by primitive.ObjectID, at time.Time) (*models.AIActionProposal, error)
	MarkFailed(ctx context.Context, teamID, id primitive.ObjectID, reason string) error
}

type aiProposalRepository struct {
	collection *mongo.Collection
}

// NewAIProposalRepository creates a new AIProposalRepository.
func NewAIProposalRepository(db *mongo.Database) AIProposalRepository {
	return &aiProposalRepository{
		collection: collectionWithIndexes(db, CollectionAIActionProposals),
	}
}

// Create inserts a pending proposal.
func (r *aiProposalRepository) Create(ctx context.Context, proposal *models.AIActionProposal) error {
	proposal.ID = primitive.NewObjectID()
	proposal.Status = models.ProposalPending
	if proposal.CreatedAt.IsZero() {
		proposal.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, proposal)
	return err
}

func (r *aiProposalRepository) FindByID(ctx context.Context, teamID, id primitive.ObjectID) (*models.AIActionProposal, error) {
	var proposal models.AIActionProposal

	err := r.collection.FindOne(ctx, bson.M{"_id": id, "teamId": teamID}).Decode(&proposal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, err
	}

	return &proposal, nil
}

// FindByTeamID lists proposals newest first, optionally by status.
func (r *aiProposalRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, status string) ([]models.AIActionProposal, error) {
	filter := bson.M{"teamId": teamID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(100)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var proposals []models.AIActionProposal
	if err := cursor.All(ctx, &proposals); err != nil {
		return nil, err
	}

	if proposals == nil {
		proposals = []models.AIActionProposal{}
	}

	return proposals, nil
}

// Transition moves a pending proposal to executed or rejected. The update
// only matches pending rows, so two concurrent callers cannot both win.
func (r *aiProposalRepository) Transition(ctx context.Context, teamID, id primitive.ObjectID, to string, by primitive.ObjectID, at time.Time) (*models.AIActionProposal, error) {
	var proposal models.AIActionProposal

	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "teamId": teamID, "status": models.ProposalPending},
		bson.M{"$set": bson.M{
			"status":     to,
			"executedAt": at,
			"executedBy": by,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&proposal)
	if err == nil {
		return &proposal, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if _, findErr := r.FindByID(ctx, teamID, id); findErr != nil {
		return nil, findErr
	}
	return nil, apperrors.ErrProposalNotPending
}

// MarkFailed flags an executed proposal whose executor returned an error.
func (r *aiProposalRepository) MarkFailed(ctx context.Context, teamID, id primitive.ObjectID, reason string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "teamId": teamID, "status": models.ProposalExecuted},
		bson.M{"$set": bson.M{
			"status":        models.ProposalFailed,
			"failureReason": reason,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrProposalNotFound
	}
	return nil
}
