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

//go:generate mockgen -destination=mocks/mock_invitation_repository.go -package=mocks braik-api/internal/repository InvitationRepository

// InvitationRepository defines the interface for invitation data operations.
type InvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Invitation, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID, now time.Time) ([]models.Invitation, error)
	FindByEmail(ctx context.Context, email string, now time.Time) ([]models.Invitation, error)
	FindByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string, now time.Time) (*models.Invitation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// invitationRepository implements InvitationRepository using MongoDB.
type invitationRepository struct {
	collection *mongo.Collection
}

// NewInvitationRepository creates a new InvitationRepository.
func NewInvitationRepository(db *mongo.Database) InvitationRepository {
	return &invitationRepository{
		collection: collectionWithIndexes(db, CollectionInvitations),
	}
}

// Create inserts a new invitation.
func (r *invitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	invitation.ID = primitive.NewObjectID()
	invitation.Email = normalizeEmail(invitation.Email)
	if invitation.CreatedAt.IsZero() {
		invitation.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, invitation)
	return err
}

// FindByID finds an invitation by ID, expired or not.
func (r *invitationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Invitation, error) {
	var invitation models.Invitation

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// FindByTeamID returns the pending invitations of a team.
func (r *invitationRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, now time.Time) ([]models.Invitation, error) {
	return r.findPending(ctx, bson.M{"teamId": teamID}, now)
}

// FindByEmail returns the pending invitations addressed to email.
func (r *invitationRepository) FindByEmail(ctx context.Context, email string, now time.Time) ([]models.Invitation, error) {
	return r.findPending(ctx, bson.M{"email": normalizeEmail(email)}, now)
}

func (r *invitationRepository) findPending(ctx context.Context, filter bson.M, now time.Time) ([]models.Invitation, error) {
	filter["expiresAt"] = bson.M{"$gt": now}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []models.Invitation
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}

	if invitations == nil {
		invitations = []models.Invitation{}
	}

	return invitations, nil
}

// FindByTeamAndEmail finds a pending invitation for an email within a team.
func (r *invitationRepository) FindByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string, now time.Time) (*models.Invitation, error) {
	var invitation models.Invitation

	err := r.collection.FindOne(ctx, bson.M{
		"teamId":    teamID,
		"email":     normalizeEmail(email),
		"expiresAt": bson.M{"$gt": now},
	}).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// Delete removes an invitation.
func (r *invitationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrInvitationNotFound
	}

	return nil
}

// DeleteAllByTeamID removes every invitation of a team.
func (r *invitationRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}

// DeleteExpired removes invitations that expired before now.
func (r *invitationRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": now}})
	if err != nil {
		return 0, err
	}
	return int(result.DeletedCount), nil
}
