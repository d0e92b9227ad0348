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

//go:generate mockgen -destination=mocks/mock_membership_repository.go -package=mocks braik-api/internal/repository MembershipRepository

// MembershipRepository defines the interface for membership data operations.
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error)
	FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error)
	CountByRole(ctx context.Context, teamID primitive.ObjectID, role models.Role) (int, error)
	Update(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role, permissions *models.MembershipPermissions) (*models.Membership, error)
	Delete(ctx context.Context, teamID, userID primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// membershipRepository implements MembershipRepository using MongoDB.
type membershipRepository struct {
	collection *mongo.Collection
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *mongo.Database) MembershipRepository {
	return &membershipRepository{
		collection: collectionWithIndexes(db, CollectionMemberships),
	}
}

// Create inserts a new membership. A second membership for the same pair is rejected.
func (r *membershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	membership.ID = primitive.NewObjectID()
	if membership.JoinedAt.IsZero() {
		membership.JoinedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, membership)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrAlreadyMember
	}
	return err
}

// FindByTeamID returns all members of a team, oldest first.
func (r *membershipRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID) ([]models.Membership, error) {
	return r.find(ctx, bson.M{"teamId": teamID})
}

// FindByTeamAndUser finds the membership of a user in a team.
func (r *membershipRepository) FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Membership, error) {
	var membership models.Membership

	err := r.collection.FindOne(ctx, bson.M{"teamId": teamID, "userId": userID}).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, err
	}

	return &membership, nil
}

// FindByUserID returns all memberships of a user.
func (r *membershipRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *membershipRepository) find(ctx context.Context, filter bson.M) ([]models.Membership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joinedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}

	if memberships == nil {
		memberships = []models.Membership{}
	}

	return memberships, nil
}

// CountByRole returns the number of members of a team holding role.
func (r *membershipRepository) CountByRole(ctx context.Context, teamID primitive.ObjectID, role models.Role) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"teamId": teamID, "role": role})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Update changes a member's role and, when given, the permission flags.
func (r *membershipRepository) Update(ctx context.Context, teamID, userID primitive.ObjectID, role models.Role, permissions *models.MembershipPermissions) (*models.Membership, error) {
	set := bson.M{"role": role}
	if permissions != nil {
		set["permissions"] = *permissions
	}

	var membership models.Membership
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"teamId": teamID, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, err
	}

	return &membership, nil
}

// Delete removes a user from a team.
func (r *membershipRepository) Delete(ctx context.Context, teamID, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"teamId": teamID, "userId": userID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotTeamMember
	}

	return nil
}

// DeleteAllByTeamID removes every membership of a team.
func (r *membershipRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}
