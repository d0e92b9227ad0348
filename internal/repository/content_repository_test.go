package repository

import (
	"context"
	"testing"
	"time"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAnnouncementRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewAnnouncementRepository(tdb.Database)
	ctx := context.Background()
	teamID := primitive.NewObjectID()
	base := time.Now().UTC()

	post := func(t *testing.T, audience string, offset time.Duration) *models.Announcement {
		t.Helper()
		a := &models.Announcement{
			TeamID:    teamID,
			AuthorID:  primitive.NewObjectID(),
			Title:     "t",
			Body:      "b",
			Audience:  audience,
			CreatedAt: base.Add(offset),
		}
		require.NoError(t, repo.Create(ctx, a))
		return a
	}

	t.Run("defaults audience to all", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionAnnouncements)

		a := post(t, "", 0)

		assert.Equal(t, models.AudienceAll, a.Audience)
	})

	t.Run("filters by audience newest first", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionAnnouncements)

		post(t, models.AudienceAll, time.Second)
		newest := post(t, models.AudienceParents, 2*time.Second)
		post(t, models.AudienceStaff, 3*time.Second)

		items, total, err := repo.FindByTeamID(ctx, teamID, []string{models.AudienceAll, models.AudienceParents}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, items, 2)
		assert.Equal(t, newest.ID, items[0].ID)

		all, total, err := repo.FindByTeamID(ctx, teamID, nil, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, all, 2)
	})

	t.Run("scopes find and delete to the team", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionAnnouncements)

		a := post(t, models.AudienceAll, 0)

		_, err := repo.FindByID(ctx, primitive.NewObjectID(), a.ID)
		assert.Equal(t, apperrors.ErrAnnouncementNotFound, err)
		assert.Equal(t, apperrors.ErrAnnouncementNotFound, repo.Delete(ctx, primitive.NewObjectID(), a.ID))

		require.NoError(t, repo.Delete(ctx, teamID, a.ID))
	})
}

func TestDocumentRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewDocumentRepository(tdb.Database)
	ctx := context.Background()
	teamID := primitive.NewObjectID()

	t.Run("creates pending document and marks it uploaded", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionDocuments)

		id := primitive.NewObjectID()
		doc := &models.Document{
			ID:          id,
			TeamID:      teamID,
			UploadedBy:  primitive.NewObjectID(),
			Title:       "Playbook",
			FileKey:     "teams/x/documents/y/playbook.pdf",
			ContentType: "application/pdf",
		}
		require.NoError(t, repo.Create(ctx, doc))
		assert.Equal(t, id, doc.ID)
		assert.Equal(t, models.DocumentStatusPending, doc.Status)

		updated, err := repo.MarkUploaded(ctx, teamID, id)
		require.NoError(t, err)
		assert.Equal(t, models.DocumentStatusUploaded, updated.Status)
		assert.Equal(t, doc.FileKey, updated.FileKey)

		_, err = repo.MarkUploaded(ctx, primitive.NewObjectID(), id)
		assert.Equal(t, apperrors.ErrDocumentNotFound, err)
	})

	t.Run("lists and deletes", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionDocuments)

		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, &models.Document{TeamID: teamID, Title: "d"}))
		}

		docs, total, err := repo.FindByTeamID(ctx, teamID, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, docs, 1)

		require.NoError(t, repo.Delete(ctx, teamID, docs[0].ID))
		_, err = repo.FindByID(ctx, teamID, docs[0].ID)
		assert.Equal(t, apperrors.ErrDocumentNotFound, err)
	})
}
