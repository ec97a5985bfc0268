package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// HealthStatus is a point-in-time view of the service and its stores.
type HealthStatus struct {
	Service        string
	Database       string
	Sessions       string
	ActiveSessions int64
	Healthy        bool
	Checked        time.Time
}

// SessionCounter is the part of the session store the health check reads.
type SessionCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

type HealthService interface {
	Check(ctx context.Context) *HealthStatus
}

type healthService struct {
	name     string
	ping     func(ctx context.Context) error
	sessions SessionCounter
}

func NewHealthService(db *gorm.DB, sessions SessionCounter, name string) HealthService {
	return &healthService{
		name:     name,
		sessions: sessions,
		ping: func(ctx context.Context) error {
			if db == nil {
				return errDisconnected
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

var errDisconnected = errors.New("database not configured")

// Check pings the database and, when it answers, counts live sessions.
// The session store is only reported healthy if that query succeeds.
func (h *healthService) Check(ctx context.Context) *HealthStatus {
	st := &HealthStatus{
		Service:  h.name,
		Sessions: "unknown",
		Checked:  time.Now().UTC(),
	}

	switch err := h.ping(ctx); {
	case errors.Is(err, errDisconnected):
		st.Database = "disconnected"
		return st
	case err != nil:
		st.Database = "unhealthy"
		return st
	}
	st.Database = "healthy"

	if h.sessions == nil {
		st.Healthy = true
		return st
	}
	n, err := h.sessions.CountActive(ctx)
	if err != nil {
		st.Sessions = "unavailable"
		return st
	}
	st.Sessions = "healthy"
	st.ActiveSessions = n
	st.Healthy = true
	return st
}
