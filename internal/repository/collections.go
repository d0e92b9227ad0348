// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names.
const (
	CollectionUsers                 = "users"
	CollectionTeams                 = "teams"
	CollectionMemberships           = "memberships"
	CollectionInvitations           = "invitations"
	CollectionAnnouncements         = "announcements"
	CollectionDocuments             = "documents"
	CollectionAuditLogs             = "audit_logs"
	CollectionAdminAuditLogs        = "admin_audit_logs"
	CollectionAIUsage               = "ai_usage"
	CollectionAIUsageRecords        = "ai_usage_records"
	CollectionAIActionProposals     = "ai_action_proposals"
	CollectionImpersonationSessions = "admin_impersonation_sessions"
	CollectionSystemConfig          = "system_config"
	CollectionSystemConfigCounters  = "system_config_counters"
)

// Indexes lists every index the service relies on, by collection.
// The unique ones back invariants; losing them breaks correctness.
var Indexes = map[string][]mongo.IndexModel{
	CollectionUsers: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	CollectionTeams: {
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "deletedAt", Value: 1}}},
	},
	CollectionMemberships: {
		{Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	},
	CollectionInvitations: {
		{Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}},
	},
	CollectionAnnouncements: {
		{Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	CollectionDocuments: {
		{Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	CollectionAuditLogs: {
		{Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "actorId", Value: 1}}},
	},
	CollectionAdminAuditLogs: {
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "actorId", Value: 1}}},
	},
	CollectionAIUsage: {
		{Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "seasonYear", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	CollectionAIUsageRecords: {
		{Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "seasonYear", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	CollectionAIActionProposals: {
		{Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	CollectionImpersonationSessions: {
		{Keys: bson.D{{Key: "tokenHash", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "expiresAt", Value: 1}}},
		{Keys: bson.D{{Key: "actorAdminId", Value: 1}}},
	},
	CollectionSystemConfig: {
		{Keys: bson.D{{Key: "key", Value: 1}, {Key: "version", Value: -1}}, Options: options.Index().SetUnique(true)},
	},
}

// collectionWithIndexes returns the named collection after creating its indexes.
// Index failures are logged and tolerated here; cmd/index fails on them.
func collectionWithIndexes(db *mongo.Database, name string) *mongo.Collection {
	collection := db.Collection(name)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if models, ok := Indexes[name]; ok {
		if _, err := collection.Indexes().CreateMany(ctx, models); err != nil {
			zap.L().Warn("create indexes",
				zap.String("collection", name),
				zap.Error(err),
			)
		}
	}
	return collection
}

// EnsureIndexes creates all indexes. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range Indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

// paginate converts page/limit into skip/limit find options.
func paginate(page, limit int) *options.FindOptions {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}

// notDeleted filters out soft-deleted documents.
var notDeleted = bson.M{"$exists": false}
