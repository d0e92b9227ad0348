package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"braik-api/internal/audit"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	repomocks "braik-api/internal/repository/mocks"
	storagemocks "braik-api/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type documentFixture struct {
	repo    *repomocks.MockDocumentRepository
	storage *storagemocks.MockStorage
	audit   *recordingAudit
	service *DocumentService
}

func newDocumentFixture(t *testing.T) *documentFixture {
	ctrl := gomock.NewController(t)
	f := &documentFixture{
		repo:    repomocks.NewMockDocumentRepository(ctrl),
		storage: storagemocks.NewMockStorage(ctrl),
		audit:   &recordingAudit{},
	}
	f.service = NewDocumentService(f.repo, f.storage, f.audit, newTestClock(), 15*time.Minute, nil)
	return f
}

func TestDocumentService_CreateDocument(t *testing.T) {
	teamID := primitive.NewObjectID()
	actorID := primitive.NewObjectID()
	req := &models.CreateDocumentRequest{Title: "Playbook", FileName: "../playbook.pdf", ContentType: "application/pdf"}

	t.Run("registers pending document with upload url", func(t *testing.T) {
		f := newDocumentFixture(t)

		f.storage.EXPECT().
			GetPresignedPutURL(gomock.Any(), gomock.Any(), "application/pdf", 15*time.Minute).
			DoAndReturn(func(_ context.Context, key, _ string, _ time.Duration) (string, error) {
				assert.True(t, strings.HasPrefix(key, "teams/"+teamID.Hex()+"/documents/"))
				assert.True(t, strings.HasSuffix(key, "/playbook.pdf"))
				return "https://upload.example/put", nil
			})
		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *models.Document) error {
				assert.False(t, d.ID.IsZero())
				assert.Equal(t, models.DocumentStatusPending, d.Status)
				return nil
			})

		resp, err := f.service.CreateDocument(context.Background(), actorID, teamID, req)

		require.NoError(t, err)
		assert.Equal(t, "https://upload.example/put", resp.UploadURL)
		assert.Equal(t, actorID, resp.Document.UploadedBy)
		assert.Equal(t, []string{audit.ActionDocumentCreated}, f.audit.actions())
	})

	t.Run("does not persist when presign fails", func(t *testing.T) {
		f := newDocumentFixture(t)

		f.storage.EXPECT().
			GetPresignedPutURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", assert.AnError)

		_, err := f.service.CreateDocument(context.Background(), actorID, teamID, req)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestDocumentService_ConfirmUpload(t *testing.T) {
	teamID := primitive.NewObjectID()
	docID := primitive.NewObjectID()
	pending := &models.Document{ID: docID, TeamID: teamID, FileKey: "k", Status: models.DocumentStatusPending}

	t.Run("marks uploaded when object exists", func(t *testing.T) {
		f := newDocumentFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), teamID, docID).Return(pending, nil)
		f.storage.EXPECT().ObjectExists(gomock.Any(), "k").Return(true, nil)
		f.repo.EXPECT().MarkUploaded(gomock.Any(), teamID, docID).
			Return(&models.Document{ID: docID, Status: models.DocumentStatusUploaded}, nil)

		doc, err := f.service.ConfirmUpload(context.Background(), primitive.NewObjectID(), teamID, docID)

		require.NoError(t, err)
		assert.Equal(t, models.DocumentStatusUploaded, doc.Status)
		assert.Equal(t, []string{audit.ActionDocumentUploaded}, f.audit.actions())
	})

	t.Run("fails when object is missing", func(t *testing.T) {
		f := newDocumentFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), teamID, docID).Return(pending, nil)
		f.storage.EXPECT().ObjectExists(gomock.Any(), "k").Return(false, nil)

		_, err := f.service.ConfirmUpload(context.Background(), primitive.NewObjectID(), teamID, docID)

		assert.Equal(t, apperrors.ErrDocumentNotUploaded, err)
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := newDocumentFixture(t)
		uploaded := *pending
		uploaded.Status = models.DocumentStatusUploaded

		f.repo.EXPECT().FindByID(gomock.Any(), teamID, docID).Return(&uploaded, nil)

		doc, err := f.service.ConfirmUpload(context.Background(), primitive.NewObjectID(), teamID, docID)

		require.NoError(t, err)
		assert.Equal(t, models.DocumentStatusUploaded, doc.Status)
		assert.Empty(t, f.audit.actions())
	})
}

func TestDocumentService_GetDownloadURL(t *testing.T) {
	teamID := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	t.Run("presigns uploaded document", func(t *testing.T) {
		f := newDocumentFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), teamID, docID).
			Return(&models.Document{FileKey: "k", Status: models.DocumentStatusUploaded}, nil)
		f.storage.EXPECT().GetPresignedURL(gomock.Any(), "k", 15*time.Minute).Return("https://get.example", nil)

		resp, err := f.service.GetDownloadURL(context.Background(), teamID, docID)

		require.NoError(t, err)
		assert.Equal(t, "https://get.example", resp.URL)
	})

	t.Run("refuses pending document", func(t *testing.T) {
		f := newDocumentFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), teamID, docID).
			Return(&models.Document{FileKey: "k", Status: models.DocumentStatusPending}, nil)

		_, err := f.service.GetDownloadURL(context.Background(), teamID, docID)

		assert.Equal(t, apperrors.ErrDocumentNotUploaded, err)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	teamID := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	t.Run("tolerates storage failure", func(t *testing.T) {
		f := newDocumentFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), teamID, docID).Return(&models.Document{FileKey: "k"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), teamID, docID).Return(nil)
		f.storage.EXPECT().DeleteObject(gomock.Any(), "k").Return(assert.AnError)

		require.NoError(t, f.service.DeleteDocument(context.Background(), primitive.NewObjectID(), teamID, docID))
		assert.Equal(t, []string{audit.ActionDocumentDeleted}, f.audit.actions())
	})

	t.Run("returns not found", func(t *testing.T) {
		f := newDocumentFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), teamID, docID).Return(nil, apperrors.ErrDocumentNotFound)

		err := f.service.DeleteDocument(context.Background(), primitive.NewObjectID(), teamID, docID)

		assert.Equal(t, apperrors.ErrDocumentNotFound, err)
	})
}
