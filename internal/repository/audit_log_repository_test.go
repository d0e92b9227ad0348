package repository

import (
	"context"
	"testing"
	"time"

	"braik-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuditLogRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewAuditLogRepository(tdb.Database)
	ctx := context.Background()
	teamID := primitive.NewObjectID()
	actor := primitive.NewObjectID()

	t.Run("writes team and platform rows to separate collections", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionAuditLogs)
		tdb.ClearCollection(t, CollectionAdminAuditLogs)

		impersonator := primitive.NewObjectID()
		require.NoError(t, repo.Insert(ctx, models.AuditScopeTeam, &models.AuditLog{
			TeamID:         &teamID,
			ActorID:        actor,
			ImpersonatorID: &impersonator,
			Action:         "announcement.created",
			Metadata:       map[string]any{"audience": "all", "extra": map[string]any{"n": 1}},
		}))
		require.NoError(t, repo.Insert(ctx, models.AuditScopePlatform, &models.AuditLog{
			ActorID: actor,
			Action:  "impersonation.start",
		}))

		teamLogs, total, err := repo.List(ctx, models.AuditScopeTeam, models.AuditLogFilter{TeamID: &teamID}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, teamLogs, 1)
		assert.Equal(t, impersonator, *teamLogs[0].ImpersonatorID)
		assert.Equal(t, "all", teamLogs[0].Metadata["audience"])

		platformLogs, total, err := repo.List(ctx, models.AuditScopePlatform, models.AuditLogFilter{}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Nil(t, platformLogs[0].TeamID)
	})

	t.Run("rejects team row without team id", func(t *testing.T) {
		err := repo.Insert(ctx, models.AuditScopeTeam, &models.AuditLog{ActorID: actor, Action: "team.updated"})

		assert.Error(t, err)
	})

	t.Run("rejects unknown scope", func(t *testing.T) {
		err := repo.Insert(ctx, models.AuditScope("other"), &models.AuditLog{ActorID: actor})

		assert.Error(t, err)
	})

	t.Run("filters by action and actor newest first", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionAuditLogs)

		base := time.Now().UTC()
		other := primitive.NewObjectID()
		for i, a := range []struct {
			actor  primitive.ObjectID
			action string
		}{
			{actor, "member.added"},
			{other, "member.added"},
			{actor, "member.removed"},
		} {
			require.NoError(t, repo.Insert(ctx, models.AuditScopeTeam, &models.AuditLog{
				TeamID:    &teamID,
				ActorID:   a.actor,
				Action:    a.action,
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}

		logs, total, err := repo.List(ctx, models.AuditScopeTeam, models.AuditLogFilter{TeamID: &teamID, Action: "member.added"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, other, logs[0].ActorID)

		logs, total, err = repo.List(ctx, models.AuditScopeTeam, models.AuditLogFilter{ActorID: &actor}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, "member.removed", logs[0].Action)
	})
}
