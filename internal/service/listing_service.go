package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/fuzumoe/alarm-service/internal/model"
	"github.com/fuzumoe/alarm-service/internal/pagination"
)

// UserQueryPort is the read side of user storage needed by listings.
// Both methods must apply the same filter.
type UserQueryPort interface {
	CountMatching(ctx context.Context, f model.UserFilter) (int64, error)
	FetchPage(ctx context.Context, f model.UserFilter, offset, limit int) ([]model.User, error)
}

// UserListingService turns a search request into a page of users plus its
// navigation window.
type UserListingService struct {
	port UserQueryPort
	calc pagination.Calculator
	log  zerolog.Logger
}

// NewUserListingService constructs a UserListingService.
func NewUserListingService(port UserQueryPort, calc pagination.Calculator, log zerolog.Logger) *UserListingService {
	return &UserListingService{
		port: port,
		calc: calc,
		log:  log.With().Str("component", "listing").Logger(),
	}
}

// ListUsers fetches one page of users, newest first. The count and the
// page are read concurrently and without a shared snapshot, so a write
// landing between them can make the two disagree.
func (s *UserListingService) ListUsers(ctx context.Context, in model.UserSearchInput) (*model.UserPage, error) {
	offset, limit := s.calc.ComputeOffsetLimit(in.Page, in.Size)

	var (
		users []model.User
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.port.FetchPage(gctx, in.UserFilter, offset, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.port.CountMatching(gctx, in.UserFilter)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Str("search_email", in.EmailSubstring).Msg("list users failed")
		return nil, err
	}

	window := s.calc.ComputeWindow(in.Page, in.Size, s.calc.Defaults().PageCount, int(total))

	dtos := make([]model.UserDTO, len(users))
	for i := range users {
		dtos[i] = *users[i].ToDTO()
	}

	s.log.Debug().
		Int("offset", offset).
		Int("limit", limit).
		Int("rows", len(dtos)).
		Int("total", window.TotalRowCount).
		Msg("users listed")

	return &model.UserPage{Users: dtos, Paging: window}, nil
}
