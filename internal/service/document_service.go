package service

import (
	"context"
	"time"

	"braik-api/internal/audit"
	"braik-api/internal/clock"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	"braik-api/internal/repository"
	"braik-api/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DocumentService handles team documents. File bytes go straight to object
// storage through presigned URLs.
type DocumentService struct {
	repo      repository.DocumentRepository
	storage   storage.Storage
	audit     audit.Logger
	clock     clock.Clock
	urlExpiry time.Duration
	log       *zap.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(
	repo repository.DocumentRepository,
	store storage.Storage,
	auditLog audit.Logger,
	clk clock.Clock,
	urlExpiry time.Duration,
	log *zap.Logger,
) *DocumentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentService{
		repo:      repo,
		storage:   store,
		audit:     auditLog,
		clock:     clk,
		urlExpiry: urlExpiry,
		log:       log,
	}
}

// ListDocuments lists a team's documents.
func (s *DocumentService) ListDocuments(ctx context.Context, teamID primitive.ObjectID, page, limit int) (*models.DocumentListResponse, error) {
	page, limit = normalizePage(page, limit, 100)

	items, total, err := s.repo.FindByTeamID(ctx, teamID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.DocumentListResponse{
		Items:      items,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// CreateDocument registers a pending document and returns a presigned upload URL.
func (s *DocumentService) CreateDocument(ctx context.Context, actorID, teamID primitive.ObjectID, req *models.CreateDocumentRequest) (*models.DocumentUploadResponse, error) {
	doc := &models.Document{
		ID:          primitive.NewObjectID(),
		TeamID:      teamID,
		UploadedBy:  actorID,
		Title:       req.Title,
		ContentType: req.ContentType,
		Status:      models.DocumentStatusPending,
		CreatedAt:   s.clock.Now(),
	}
	doc.FileKey = storage.DocumentKey(teamID, doc.ID, req.FileName)

	uploadURL, err := s.storage.GetPresignedPutURL(ctx, doc.FileKey, doc.ContentType, s.urlExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionDocumentCreated, "document", doc.ID.Hex()).
		With(map[string]any{"title": doc.Title}))

	return &models.DocumentUploadResponse{Document: *doc, UploadURL: uploadURL}, nil
}

// ConfirmUpload marks a document uploaded once its object exists in storage.
func (s *DocumentService) ConfirmUpload(ctx context.Context, actorID, teamID, documentID primitive.ObjectID) (*models.Document, error) {
	doc, err := s.repo.FindByID(ctx, teamID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status == models.DocumentStatusUploaded {
		return doc, nil
	}

	exists, err := s.storage.ObjectExists(ctx, doc.FileKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrDocumentNotUploaded
	}

	doc, err = s.repo.MarkUploaded(ctx, teamID, documentID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionDocumentUploaded, "document", documentID.Hex()))
	return doc, nil
}

// GetDownloadURL returns a presigned download URL for an uploaded document.
func (s *DocumentService) GetDownloadURL(ctx context.Context, teamID, documentID primitive.ObjectID) (*models.DocumentURLResponse, error) {
	doc, err := s.repo.FindByID(ctx, teamID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != models.DocumentStatusUploaded {
		return nil, apperrors.ErrDocumentNotUploaded
	}

	url, err := s.storage.GetPresignedURL(ctx, doc.FileKey, s.urlExpiry)
	if err != nil {
		return nil, err
	}
	return &models.DocumentURLResponse{URL: url}, nil
}

// DeleteDocument removes the document record and its stored object.
func (s *DocumentService) DeleteDocument(ctx context.Context, actorID, teamID, documentID primitive.ObjectID) error {
	doc, err := s.repo.FindByID(ctx, teamID, documentID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, teamID, documentID); err != nil {
		return err
	}

	// An orphaned object is harmless; the record is already gone.
	if err := s.storage.DeleteObject(ctx, doc.FileKey); err != nil {
		s.log.Warn("failed to delete document object",
			zap.String("key", doc.FileKey),
			zap.Error(err),
		)
	}

	s.audit.Record(ctx, audit.TeamEntry(teamID, actorID, audit.ActionDocumentDeleted, "document", documentID.Hex()))
	return nil
}
