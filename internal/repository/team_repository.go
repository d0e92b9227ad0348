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

//go:generate mockgen -destination=mocks/mock_team_repository.go -package=mocks braik-api/internal/repository TeamRepository

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindBySlug(ctx context.Context, slug string) (*models.Team, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Team, int, error)
	List(ctx context.Context, page, limit int) ([]models.Team, int, error)
	Update(ctx context.Context, team *models.Team) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, req *models.UpdateTeamStatusRequest) (*models.Team, error)
	UpdateAISettings(ctx context.Context, id primitive.ObjectID, req *models.UpdateTeamAISettingsRequest) (*models.Team, error)
	IncrementAIUsage(ctx context.Context, id primitive.ObjectID, tokens int64) error
	SetPayoutAccount(ctx context.Context, id primitive.ObjectID, accountID string) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: collectionWithIndexes(db, CollectionTeams),
	}
}

// Create inserts a new team. New teams start active with AI enabled.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	now := time.Now().UTC()
	team.ID = primitive.NewObjectID()
	team.CreatedAt = now
	team.UpdatedAt = now

	if team.TeamStatus == "" {
		team.TeamStatus = models.TeamStatusActive
	}
	if team.SubscriptionStatus == "" {
		team.SubscriptionStatus = models.SubscriptionActive
	}

	if _, err := r.collection.InsertOne(ctx, team); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTeamSlugTaken
		}
		return err
	}
	return nil
}

// FindByID finds a team by ID. Soft-deleted teams are not found.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	return r.findOne(ctx, bson.M{"_id": id, "deletedAt": notDeleted})
}

// FindBySlug finds a team by slug (excludes soft-deleted).
func (r *teamRepository) FindBySlug(ctx context.Context, slug string) (*models.Team, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "deletedAt": notDeleted})
}

func (r *teamRepository) findOne(ctx context.Context, filter bson.M) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, filter).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindByUserID returns paginated teams for a user (teams where user is a member).
// This requires a lookup with the memberships collection.
func (r *teamRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Team, int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"deletedAt": notDeleted}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         CollectionMemberships,
			"localField":   "_id",
			"foreignField": "teamId",
			"as":           "members",
		}}},
		{{Key: "$match", Value: bson.M{"members.userId": userID}}},
		{{Key: "$project", Value: bson.M{"members": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	return r.aggregatePage(ctx, pipeline, page, limit)
}

// List returns every non-deleted team, newest first.
func (r *teamRepository) List(ctx context.Context, page, limit int) ([]models.Team, int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"deletedAt": notDeleted}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	return r.aggregatePage(ctx, pipeline, page, limit)
}

func (r *teamRepository) aggregatePage(ctx context.Context, pipeline mongo.Pipeline, page, limit int) ([]models.Team, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	skip := (page - 1) * limit

	countPipeline := append(mongo.Pipeline{}, pipeline...)
	countPipeline = append(countPipeline, bson.D{{Key: "$count", Value: "total"}})
	countCursor, err := r.collection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, err
	}
	defer countCursor.Close(ctx)

	var countResult []struct {
		Total int `bson:"total"`
	}
	if err := countCursor.All(ctx, &countResult); err != nil {
		return nil, 0, err
	}

	total := 0
	if len(countResult) > 0 {
		total = countResult[0].Total
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: int64(skip)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, 0, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, total, nil
}

// Update updates the editable profile of a team.
func (r *teamRepository) Update(ctx context.Context, team *models.Team) error {
	team.UpdatedAt = time.Now().UTC()

	filter := bson.M{
		"_id":       team.ID,
		"deletedAt": notDeleted,
	}

	update := bson.M{
		"$set": bson.M{
			"name":      team.Name,
			"slug":      team.Slug,
			"sport":     team.Sport,
			"updatedAt": team.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTeamSlugTaken
		}
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}

// UpdateStatus sets the lifecycle and/or subscription status.
func (r *teamRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, req *models.UpdateTeamStatusRequest) (*models.Team, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.TeamStatus != nil {
		set["teamStatus"] = *req.TeamStatus
	}
	if req.SubscriptionStatus != nil {
		set["subscriptionStatus"] = *req.SubscriptionStatus
	}

	return r.findOneAndSet(ctx, id, set)
}

// UpdateAISettings sets the AI switches and credit allowance.
func (r *teamRepository) UpdateAISettings(ctx context.Context, id primitive.ObjectID, req *models.UpdateTeamAISettingsRequest) (*models.Team, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.AIEnabled != nil {
		set["aiEnabled"] = *req.AIEnabled
	}
	if req.AIDisabledByPlatform != nil {
		set["aiDisabledByPlatform"] = *req.AIDisabledByPlatform
	}
	if req.BaseAICredits != nil {
		set["baseAiCredits"] = *req.BaseAICredits
	}

	return r.findOneAndSet(ctx, id, set)
}

func (r *teamRepository) findOneAndSet(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "deletedAt": notDeleted},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// IncrementAIUsage adds weighted tokens to the current billing cycle counter.
func (r *teamRepository) IncrementAIUsage(ctx context.Context, id primitive.ObjectID, tokens int64) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"aiUsageThisCycle": tokens},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// SetPayoutAccount links the external payout account.
func (r *teamRepository) SetPayoutAccount(ctx context.Context, id primitive.ObjectID, accountID string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "deletedAt": notDeleted},
		bson.M{"$set": bson.M{
			"payoutAccountId": accountID,
			"updatedAt":       time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// SoftDelete marks a team as deleted.
func (r *teamRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":       id,
		"deletedAt": notDeleted,
	}

	update := bson.M{
		"$set": bson.M{
			"deletedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}

	return nil
}
