package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fuzumoe/alarm-service/internal/model"
	"github.com/fuzumoe/alarm-service/internal/repository"
)

// UserService defines business operations around users.
type UserService interface {
	Join(ctx context.Context, input *model.CreateUserInput) (uint, error)
	Get(ctx context.Context, id uint) (*model.UserDTO, error)
}

type userService struct {
	repo     repository.UserRepository
	validate *Validator
	cost     int
	log      zerolog.Logger
}

// NewUserService constructs a UserService.
func NewUserService(repo repository.UserRepository, log zerolog.Logger) UserService {
	return newUserService(repo, bcrypt.DefaultCost, log)
}

func newUserService(repo repository.UserRepository, cost int, log zerolog.Logger) *userService {
	return &userService{
		repo:     repo,
		validate: NewValidator(),
		cost:     cost,
		log:      log.With().Str("component", "user").Logger(),
	}
}

// Join registers a guest account and returns its id.
func (s *userService) Join(ctx context.Context, input *model.CreateUserInput) (uint, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil && existing != nil:
		return 0, ErrEmailDuplicate
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return 0, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	u := model.UserFromCreateInput(input)
	u.Password = string(hash)
	if err := s.repo.Create(ctx, u); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrAlreadyExists) {
			return 0, ErrEmailDuplicate
		}
		return 0, err
	}

	s.log.Info().Uint("user_id", u.ID).Msg("user joined")
	return u.ID, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u.ToDTO(), nil
}
