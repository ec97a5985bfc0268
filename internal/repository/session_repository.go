package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fuzumoe/alarm-service/internal/model"
)

// SessionRepository stores server-side login sessions.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, s *model.Session) error

	// FindActive returns the session with id if it exists and has not expired.
	FindActive(ctx context.Context, id string) (*model.Session, error)

	// Delete removes the session with id. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// CountActive reports how many sessions have not yet expired.
	CountActive(ctx context.Context) (int64, error)

	// RemoveExpired deletes all sessions whose expiration has passed and
	// reports how many were removed.
	RemoveExpired(ctx context.Context) (int64, error)
}

type sessionRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepo creates a new GORM-backed SessionRepository.
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db, now: time.Now}
}

func (r *sessionRepo) Create(ctx context.Context, s *model.Session) error {
	return mapError(r.db.WithContext(ctx).Create(s).Error)
}

func (r *sessionRepo) FindActive(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, r.now()).
		First(&s).
		Error
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	return mapError(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Session{}).
		Error)
}

func (r *sessionRepo) RemoveExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now()).
		Delete(&model.Session{})
	return res.RowsAffected, mapError(res.Error)
}

func (r *sessionRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("expires_at > ?", r.now()).
		Count(&n).
		Error
	return n, mapError(err)
}
