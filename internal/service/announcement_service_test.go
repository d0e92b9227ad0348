package service

import (
	"context"
	"testing"

	"braik-api/internal/audit"
	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"
	repomocks "braik-api/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestVisibleAudiences(t *testing.T) {
	tests := []struct {
		role models.Role
		want []string
	}{
		{models.RoleHeadCoach, nil},
		{models.RoleAssistantCoach, nil},
		{models.RolePlayer, []string{"all", "players"}},
		{models.RoleParent, []string{"all", "parents"}},
		{"", []string{"all"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleAudiences(tt.role))
		})
	}
}

func TestAnnouncementService_ListAnnouncements(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockAnnouncementRepository(ctrl)
	service := NewAnnouncementService(repo, &recordingAudit{}, newTestClock())
	teamID := primitive.NewObjectID()

	repo.EXPECT().
		FindByTeamID(gomock.Any(), teamID, []string{"all", "parents"}, 1, 20).
		Return([]models.Announcement{{Title: "Picture day"}}, 1, nil)

	resp, err := service.ListAnnouncements(context.Background(), teamID, models.RoleParent, 0, 0)

	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestAnnouncementService_CreateAnnouncement(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockAnnouncementRepository(ctrl)
	recorder := &recordingAudit{}
	service := NewAnnouncementService(repo, recorder, newTestClock())
	teamID := primitive.NewObjectID()
	actorID := primitive.NewObjectID()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Announcement) error {
			a.ID = primitive.NewObjectID()
			a.Audience = models.AudienceAll
			assert.Equal(t, actorID, a.AuthorID)
			assert.Equal(t, testNow, a.CreatedAt)
			return nil
		})

	a, err := service.CreateAnnouncement(context.Background(), actorID, teamID, &models.CreateAnnouncementRequest{
		Title: "Practice moved",
		Body:  "5pm Thursday",
	})

	require.NoError(t, err)
	assert.Equal(t, "Practice moved", a.Title)
	assert.Equal(t, audit.ActionAnnouncementCreated, recorder.last().Action)
	assert.Equal(t, map[string]any{"audience": "all"}, recorder.last().Metadata)
}

func TestAnnouncementService_DeleteAnnouncement(t *testing.T) {
	teamID := primitive.NewObjectID()
	id := primitive.NewObjectID()

	t.Run("deletes and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockAnnouncementRepository(ctrl)
		recorder := &recordingAudit{}
		service := NewAnnouncementService(repo, recorder, newTestClock())

		repo.EXPECT().Delete(gomock.Any(), teamID, id).Return(nil)

		require.NoError(t, service.DeleteAnnouncement(context.Background(), primitive.NewObjectID(), teamID, id))
		assert.Equal(t, []string{audit.ActionAnnouncementDeleted}, recorder.actions())
	})

	t.Run("returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockAnnouncementRepository(ctrl)
		recorder := &recordingAudit{}
		service := NewAnnouncementService(repo, recorder, newTestClock())

		repo.EXPECT().Delete(gomock.Any(), teamID, id).Return(apperrors.ErrAnnouncementNotFound)

		err := service.DeleteAnnouncement(context.Background(), primitive.NewObjectID(), teamID, id)

		assert.Equal(t, apperrors.ErrAnnouncementNotFound, err)
		assert.Empty(t, recorder.actions())
	})
}
