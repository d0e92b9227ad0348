package service

import (
	"context"
	"strings"

	apperrors "braik-api/internal/errors"
	"braik-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActionPostAnnouncement is the proposal action that posts an announcement.
const ActionPostAnnouncement = "post_announcement"

// ProposalExecutor applies one kind of approved assistant proposal.
type ProposalExecutor interface {
	// Validate checks a payload before the proposal is stored.
	Validate(payload map[string]any) error
	// Execute applies the proposal on behalf of the approver.
	Execute(ctx context.Context, proposal *models.AIActionProposal, approverID primitive.ObjectID) error
}

type postAnnouncementExecutor struct {
	announcements AnnouncementServicer
}

// NewPostAnnouncementExecutor executes post_announcement proposals.
func NewPostAnnouncementExecutor(announcements AnnouncementServicer) ProposalExecutor {
	return &postAnnouncementExecutor{announcements: announcements}
}

func (e *postAnnouncementExecutor) Validate(payload map[string]any) error {
	_, err := announcementFromPayload(payload)
	return err
}

func (e *postAnnouncementExecutor) Execute(ctx context.Context, proposal *models.AIActionProposal, approverID primitive.ObjectID) error {
	req, err := announcementFromPayload(proposal.Payload)
	if err != nil {
		return err
	}
	_, err = e.announcements.CreateAnnouncement(ctx, approverID, proposal.TeamID, req)
	return err
}

func announcementFromPayload(payload map[string]any) (*models.CreateAnnouncementRequest, error) {
	title, _ := payload["title"].(string)
	body, _ := payload["body"].(string)
	audience, _ := payload["audience"].(string)

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" || len(title) > 200 || len(body) > 10000 {
		return nil, apperrors.ErrInvalidProposal
	}

	switch audience {
	case "", models.AudienceAll, models.AudiencePlayers, models.AudienceParents, models.AudienceStaff:
	default:
		return nil, apperrors.ErrInvalidProposal
	}

	return &models.CreateAnnouncementRequest{Title: title, Body: body, Audience: audience}, nil
}
