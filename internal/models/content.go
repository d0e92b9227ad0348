package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement audiences.
const (
	AudienceAll     = "all"
	AudiencePlayers = "players"
	AudienceParents = "parents"
	AudienceStaff   = "staff"
)

// Announcement is a message posted to a team.
type Announcement struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID    primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	AuthorID  primitive.ObjectID `json:"authorId" bson:"authorId" example:"507f1f77bcf86cd799439013"`
	Title     string             `json:"title" bson:"title" example:"Practice moved"`
	Body      string             `json:"body" bson:"body" example:"Thursday practice starts at 5pm."`
	Audience  string             `json:"audience" bson:"audience" example:"all"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// CreateAnnouncementRequest is the payload for posting an announcement.
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200" example:"Practice moved"`
	Body     string `json:"body" binding:"required,max=10000" example:"Thursday practice starts at 5pm."`
	Audience string `json:"audience" binding:"omitempty,oneof=all players parents staff" example:"all"`
}

// AnnouncementListResponse is the response for listing announcements.
type AnnouncementListResponse struct {
	Items      []Announcement `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// Document upload states.
const (
	DocumentStatusPending  = "pending"
	DocumentStatusUploaded = "uploaded"
)

// Document is a file shared with a team. The bytes live in object storage.
type Document struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID      primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	UploadedBy  primitive.ObjectID `json:"uploadedBy" bson:"uploadedBy" example:"507f1f77bcf86cd799439013"`
	Title       string             `json:"title" bson:"title" example:"Playbook 2024"`
	FileKey     string             `json:"-" bson:"fileKey"`
	ContentType string             `json:"contentType" bson:"contentType" example:"application/pdf"`
	Status      string             `json:"status" bson:"status" example:"uploaded"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// CreateDocumentRequest registers a document and asks for an upload URL.
type CreateDocumentRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200" example:"Playbook 2024"`
	FileName    string `json:"fileName" binding:"required,max=255" example:"playbook.pdf"`
	ContentType string `json:"contentType" binding:"required,max=100" example:"application/pdf"`
}

// DocumentUploadResponse carries the new document and its presigned upload URL.
type DocumentUploadResponse struct {
	Document  Document `json:"document"`
	UploadURL string   `json:"uploadUrl" example:"https://s3.amazonaws.com/bucket/teams/...?X-Amz-Signature=..."`
}

// DocumentURLResponse carries a presigned download URL.
type DocumentURLResponse struct {
	URL string `json:"url" example:"https://s3.amazonaws.com/bucket/teams/...?X-Amz-Signature=..."`
}

// DocumentListResponse is the response for listing documents.
type DocumentListResponse struct {
	Items      []Document `json:"items"`
	Pagination Pagination `json:"pagination"`
}
