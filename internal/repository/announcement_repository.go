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
)

//go:generate mockgen -destination=mocks/mock_announcement_repository.go -package=mocks braik-api/internal/repository AnnouncementRepository

// AnnouncementRepository defines the interface for announcement data operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	FindByID(ctx context.Context, teamID, id primitive.ObjectID) (*models.Announcement, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID, audiences []string, page, limit int) ([]models.Announcement, int, error)
	Delete(ctx context.Context, teamID, id primitive.ObjectID) error
}

type announcementRepository struct {
	collection *mongo.Collection
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(db *mongo.Database) AnnouncementRepository {
	return &announcementRepository{
		collection: collectionWithIndexes(db, CollectionAnnouncements),
	}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	announcement.ID = primitive.NewObjectID()
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = time.Now().UTC()
	}
	if announcement.Audience == "" {
		announcement.Audience = models.AudienceAll
	}

	_, err := r.collection.InsertOne(ctx, announcement)
	return err
}

// FindByID finds an announcement scoped to its team.
func (r *announcementRepository) FindByID(ctx context.Context, teamID, id primitive.ObjectID) (*models.Announcement, error) {
	var announcement models.Announcement

	err := r.collection.FindOne(ctx, bson.M{"_id": id, "teamId": teamID}).Decode(&announcement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, err
	}

	return &announcement, nil
}

// FindByTeamID returns announcements newest first. A nil audiences slice means no audience filter.
func (r *announcementRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, audiences []string, page, limit int) ([]models.Announcement, int, error) {
	filter := bson.M{"teamId": teamID}
	if audiences != nil {
		filter["audience"] = bson.M{"$in": audiences}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := paginate(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var announcements []models.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, 0, err
	}

	if announcements == nil {
		announcements = []models.Announcement{}
	}

	return announcements, int(total), nil
}

func (r *announcementRepository) Delete(ctx context.Context, teamID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "teamId": teamID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrAnnouncementNotFound
	}

	return nil
}
