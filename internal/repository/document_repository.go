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

//go:generate mockgen -destination=mocks/mock_document_repository.go -package=mocks braik-api/internal/repository DocumentRepository

// DocumentRepository defines the interface for document metadata operations.
type DocumentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	FindByID(ctx context.Context, teamID, id primitive.ObjectID) (*models.Document, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID, page, limit int) ([]models.Document, int, error)
	MarkUploaded(ctx context.Context, teamID, id primitive.ObjectID) (*models.Document, error)
	Delete(ctx context.Context, teamID, id primitive.ObjectID) error
}

type documentRepository struct {
	collection *mongo.Collection
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(db *mongo.Database) DocumentRepository {
	return &documentRepository{
		collection: collectionWithIndexes(db, CollectionDocuments),
	}
}

// Create inserts document metadata. The ID must be set by the caller since
// it is part of the object key.
func (r *documentRepository) Create(ctx context.Context, document *models.Document) error {
	if document.ID.IsZero() {
		document.ID = primitive.NewObjectID()
	}
	if document.CreatedAt.IsZero() {
		document.CreatedAt = time.Now().UTC()
	}
	if document.Status == "" {
		document.Status = models.DocumentStatusPending
	}

	_, err := r.collection.InsertOne(ctx, document)
	return err
}

func (r *documentRepository) FindByID(ctx context.Context, teamID, id primitive.ObjectID) (*models.Document, error) {
	var document models.Document

	err := r.collection.FindOne(ctx, bson.M{"_id": id, "teamId": teamID}).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}

	return &document, nil
}

// FindByTeamID returns paginated documents, newest first.
func (r *documentRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, page, limit int) ([]models.Document, int, error) {
	filter := bson.M{"teamId": teamID}

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

	var documents []models.Document
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, 0, err
	}

	if documents == nil {
		documents = []models.Document{}
	}

	return documents, int(total), nil
}

// MarkUploaded flips a document to uploaded once the object is in storage.
func (r *documentRepository) MarkUploaded(ctx context.Context, teamID, id primitive.ObjectID) (*models.Document, error) {
	var document models.Document

	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "teamId": teamID},
		bson.M{"$set": bson.M{"status": models.DocumentStatusUploaded}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}

	return &document, nil
}

func (r *documentRepository) Delete(ctx context.Context, teamID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "teamId": teamID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}
