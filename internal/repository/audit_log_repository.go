package repository

import (
	"context"
	"fmt"
	"time"

	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -destination=mocks/mock_audit_log_repository.go -package=mocks braik-api/internal/repository AuditLogRepository

// AuditLogRepository stores audit rows. Rows are append-only: there is no
// update or delete operation.
type AuditLogRepository interface {
	Insert(ctx context.Context, scope models.AuditScope, log *models.AuditLog) error
	List(ctx context.Context, scope models.AuditScope, filter models.AuditLogFilter, page, limit int) ([]models.AuditLog, int, error)
}

type auditLogRepository struct {
	team     *mongo.Collection
	platform *mongo.Collection
}

// NewAuditLogRepository creates a new AuditLogRepository over both audit collections.
func NewAuditLogRepository(db *mongo.Database) AuditLogRepository {
	return &auditLogRepository{
		team:     collectionWithIndexes(db, CollectionAuditLogs),
		platform: collectionWithIndexes(db, CollectionAdminAuditLogs),
	}
}

func (r *auditLogRepository) collection(scope models.AuditScope) (*mongo.Collection, error) {
	switch scope {
	case models.AuditScopeTeam:
		return r.team, nil
	case models.AuditScopePlatform:
		return r.platform, nil
	default:
		return nil, fmt.Errorf("unknown audit scope %q", scope)
	}
}

// Insert appends one audit row. Team-scoped rows must carry a team ID.
func (r *auditLogRepository) Insert(ctx context.Context, scope models.AuditScope, log *models.AuditLog) error {
	collection, err := r.collection(scope)
	if err != nil {
		return err
	}
	if scope == models.AuditScopeTeam && log.TeamID == nil {
		return fmt.Errorf("team audit row %q has no team id", log.Action)
	}

	if log.ID.IsZero() {
		log.ID = primitive.NewObjectID()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	_, err = collection.InsertOne(ctx, log)
	return err
}

// List returns audit rows newest first.
func (r *auditLogRepository) List(ctx context.Context, scope models.AuditScope, filter models.AuditLogFilter, page, limit int) ([]models.AuditLog, int, error) {
	collection, err := r.collection(scope)
	if err != nil {
		return nil, 0, err
	}

	query := bson.M{}
	if filter.TeamID != nil {
		query["teamId"] = *filter.TeamID
	}
	if filter.ActorID != nil {
		query["actorId"] = *filter.ActorID
	}
	if filter.Action != "" {
		query["action"] = filter.Action
	}

	total, err := collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := paginate(page, limit).SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, 0, err
	}

	if logs == nil {
		logs = []models.AuditLog{}
	}

	return logs, int(total), nil
}
