package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestImpersonationRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewImpersonationRepository(tdb.Database)
	ctx := context.Background()
	now := time.Now().UTC()

	start := func(t *testing.T, hash string, expiresAt time.Time) *models.ImpersonationSession {
		t.Helper()
		s := &models.ImpersonationSession{
			ActorAdminID: primitive.NewObjectID(),
			TargetUserID: primitive.NewObjectID(),
			TokenHash:    hash,
			Active:       true,
			ExpiresAt:    expiresAt,
			CreatedAt:    now,
		}
		require.NoError(t, repo.Create(ctx, s))
		return s
	}

	t.Run("finds by token hash", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionImpersonationSessions)

		s := start(t, "hash-1", now.Add(10*time.Minute))

		found, err := repo.FindByTokenHash(ctx, "hash-1")
		require.NoError(t, err)
		assert.Equal(t, s.ID, found.ID)

		_, err = repo.FindByTokenHash(ctx, "nope")
		assert.Equal(t, apperrors.ErrImpersonationInvalid, err)
	})

	t.Run("deactivate is idempotent under concurrency", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionImpersonationSessions)

		s := start(t, "hash-2", now.Add(10*time.Minute))

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				changed, err := repo.Deactivate(ctx, s.ID, now)
				assert.NoError(t, err)
				if changed {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, wins)
		found, err := repo.FindByTokenHash(ctx, "hash-2")
		require.NoError(t, err)
		assert.False(t, found.Active)
		assert.NotNil(t, found.EndedAt)
	})

	t.Run("lists active unexpired sessions", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionImpersonationSessions)

		live := start(t, "live", now.Add(5*time.Minute))
		start(t, "stale", now.Add(-time.Minute))
		ended := start(t, "ended", now.Add(5*time.Minute))
		_, err := repo.Deactivate(ctx, ended.ID, now)
		require.NoError(t, err)

		sessions, err := repo.FindActive(ctx, now)

		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, live.ID, sessions[0].ID)
	})
}

func TestSystemConfigRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSystemConfigRepository(tdb.Database)
	ctx := context.Background()

	t.Run("versions strictly increase per key", func(t *testing.T) {
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			versions = map[int64]bool{}
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := repo.NextVersion(ctx, "ai.default_credits")
				assert.NoError(t, err)
				mu.Lock()
				versions[v] = true
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Len(t, versions, 10)
		for v := int64(1); v <= 10; v++ {
			assert.True(t, versions[v], "missing version %d", v)
		}

		other, err := repo.NextVersion(ctx, "other.key")
		require.NoError(t, err)
		assert.Equal(t, int64(1), other)
	})

	t.Run("latest and history", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionSystemConfig)

		for v := int64(1); v <= 3; v++ {
			require.NoError(t, repo.Insert(ctx, &models.SystemConfig{
				Key:       "feature.flags",
				Version:   v,
				Value:     map[string]any{"chat": v > 1},
				UpdatedBy: primitive.NewObjectID(),
				CreatedAt: time.Now().UTC(),
			}))
		}

		latest, err := repo.FindLatest(ctx, "feature.flags")
		require.NoError(t, err)
		assert.Equal(t, int64(3), latest.Version)
		value, ok := latest.Value.(bson.M)
		require.True(t, ok, "unexpected value type %T", latest.Value)
		assert.Equal(t, true, value["chat"])

		history, err := repo.FindHistory(ctx, "feature.flags", 2)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, int64(3), history[0].Version)
		assert.Equal(t, int64(2), history[1].Version)

		_, err = repo.FindLatest(ctx, "missing")
		assert.Equal(t, apperrors.ErrConfigNotFound, err)
	})

	t.Run("duplicate version is rejected", func(t *testing.T) {
		tdb.ClearCollection(t, CollectionSystemConfig)

		require.NoError(t, repo.Insert(ctx, &models.SystemConfig{Key: "k", Version: 1, Value: "a"}))
		err := repo.Insert(ctx, &models.SystemConfig{Key: "k", Version: 1, Value: "b"})

		assert.Error(t, err)
	})
}
