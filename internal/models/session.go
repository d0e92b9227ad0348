package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SessionUser is the authenticated identity attached to a request.
type SessionUser struct {
	ID              primitive.ObjectID `json:"id"`
	Email           string             `json:"email"`
	Name            string             `json:"name"`
	PlatformRole    string             `json:"platformRole,omitempty"`
	IsPlatformOwner bool               `json:"isPlatformOwner"`
}

// NewSessionUser builds a SessionUser from a stored user.
func NewSessionUser(u *User) *SessionUser {
	return &SessionUser{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		PlatformRole:    u.PlatformRole,
		IsPlatformOwner: u.IsPlatformOwner,
	}
}

// IsPlatformAdmin reports whether the session belongs to platform staff.
func (s *SessionUser) IsPlatformAdmin() bool {
	return s != nil && (s.IsPlatformOwner || s.PlatformRole == PlatformRoleAdmin)
}
