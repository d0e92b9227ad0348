// Package audit records append-only audit rows without ever failing the caller.
package audit

import (
	"context"
	"errors"
	"time"

	"braik-api/internal/clock"
	"braik-api/internal/metrics"
	"braik-api/internal/models"
	"braik-api/internal/queue"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Actions written to the audit log.
const (
	ActionTeamCreated           = "team.created"
	ActionTeamUpdated           = "team.updated"
	ActionTeamDeleted           = "team.deleted"
	ActionTeamStatusChanged     = "team.status_changed"
	ActionTeamAISettingsChanged = "team.ai_settings_changed"
	ActionMemberAdded           = "member.added"
	ActionMemberRoleChanged     = "member.role_changed"
	ActionMemberRemoved         = "member.removed"
	ActionMemberLeft            = "member.left"
	ActionInvitationCreated     = "invitation.created"
	ActionInvitationCancelled   = "invitation.cancelled"
	ActionInvitationAccepted    = "invitation.accepted"
	ActionInvitationDeclined    = "invitation.declined"
	ActionAnnouncementCreated   = "announcement.created"
	ActionAnnouncementDeleted   = "announcement.deleted"
	ActionDocumentCreated       = "document.created"
	ActionDocumentUploaded      = "document.uploaded"
	ActionDocumentDeleted       = "document.deleted"
	ActionPayoutConnected       = "billing.payout_connected"
	ActionAIProposalCreated     = "ai.proposal_created"
	ActionAIProposalExecuted    = "ai.proposal_executed"
	ActionAIProposalRejected    = "ai.proposal_rejected"
	ActionImpersonationStart    = "impersonation.start"
	ActionImpersonationEnd      = "impersonation.end"
	ActionImpersonationExpired  = "impersonation.expired"
	ActionConfigUpdated         = "system_config.updated"
)

// Entry is what callers describe; request metadata is added from the context.
type Entry struct {
	Scope      models.AuditScope
	TeamID     *primitive.ObjectID
	ActorID    primitive.ObjectID
	Action     string
	TargetType string
	TargetID   string
	Metadata   map[string]any
}

// TeamEntry builds a team-scoped entry.
func TeamEntry(teamID, actorID primitive.ObjectID, action, targetType, targetID string) Entry {
	return Entry{
		Scope:      models.AuditScopeTeam,
		TeamID:     &teamID,
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
	}
}

// PlatformEntry builds a platform-scoped entry.
func PlatformEntry(actorID primitive.ObjectID, action, targetType, targetID string) Entry {
	return Entry{
		Scope:      models.AuditScopePlatform,
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
	}
}

// With returns a copy of e carrying metadata.
func (e Entry) With(metadata map[string]any) Entry {
	e.Metadata = metadata
	return e
}

//go:generate mockgen -destination=mocks/mock_audit.go -package=mocks braik-api/internal/audit Logger

// Logger records audit entries. Record never blocks and never returns an error.
type Logger interface {
	Record(ctx context.Context, entry Entry)
}

// EventRecorder counts audit outcomes.
type EventRecorder interface {
	AuditEvent(result string)
}

// QueueLogger hands entries to the background audit queue.
type QueueLogger struct {
	queue  queue.Queue
	clock  clock.Clock
	events EventRecorder
	log    *zap.Logger
}

// NewQueueLogger creates a QueueLogger. events may be nil.
func NewQueueLogger(q queue.Queue, clk clock.Clock, events EventRecorder, log *zap.Logger) *QueueLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &QueueLogger{queue: q, clock: clk, events: events, log: log.Named("audit")}
}

var _ Logger = (*QueueLogger)(nil)

// Record stamps the entry with request metadata and enqueues it.
// A full or closed queue drops the row with a warning and a metric.
func (l *QueueLogger) Record(ctx context.Context, entry Entry) {
	row := BuildLog(ctx, entry, l.clock.Now())

	err := l.queue.Enqueue(queue.AuditJob{Scope: entry.Scope, Log: row})
	if err == nil {
		l.record(metrics.AuditEnqueued)
		return
	}

	l.record(metrics.AuditDropped)
	fields := []zap.Field{
		zap.String("action", entry.Action),
		zap.String("scope", string(entry.Scope)),
		zap.String("actor_id", entry.ActorID.Hex()),
		zap.Error(err),
	}
	if errors.Is(err, queue.ErrQueueFull) {
		l.log.Warn("audit queue full, row dropped", fields...)
		return
	}
	l.log.Error("audit enqueue failed, row dropped", fields...)
}

func (l *QueueLogger) record(result string) {
	if l.events != nil {
		l.events.AuditEvent(result)
	}
}

// BuildLog turns an entry into a stored row, copying request metadata from ctx.
func BuildLog(ctx context.Context, entry Entry, now time.Time) models.AuditLog {
	row := models.AuditLog{
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Metadata:   entry.Metadata,
		CreatedAt:  now,
	}
	if entry.Scope == models.AuditScopeTeam {
		row.TeamID = entry.TeamID
	}

	meta := MetaFromContext(ctx)
	row.IPAddress = meta.IPAddress
	row.UserAgent = meta.UserAgent
	if !meta.ImpersonatorID.IsZero() {
		impersonator := meta.ImpersonatorID
		row.ImpersonatorID = &impersonator
	}
	return row
}

// NopLogger discards entries.
type NopLogger struct{}

// Record does nothing.
func (NopLogger) Record(context.Context, Entry) {}
