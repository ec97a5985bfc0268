package model

import (
	"time"

	"github.com/google/uuid"
)

// NewSessionID generates a new unique session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Session is a server-side login session. The cookie only carries a signed
// reference to ID; deleting the row ends the session.
type Session struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expiresAt"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName overrides GORM's default table name.
func (Session) TableName() string {
	return "sessions"
}

// NewSession builds a session for userID that expires after ttl.
func NewSession(userID uint, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        NewSessionID(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
