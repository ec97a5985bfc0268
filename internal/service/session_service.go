package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fuzumoe/alarm-service/internal/model"
	"github.com/fuzumoe/alarm-service/internal/repository"
)

// LoginResult is what a successful login hands back to the HTTP layer.
type LoginResult struct {
	User      *model.UserDTO
	Token     string
	ExpiresAt time.Time
}

// SessionService manages server-side login sessions. The token handed to
// clients is an HS256 JWT whose ID is the session row's id; the row, not
// the token, decides whether a session is alive.
type SessionService interface {
	Login(ctx context.Context, input *model.LoginInput) (*LoginResult, error)
	Resolve(ctx context.Context, token string) (*model.UserDTO, error)
	Logout(ctx context.Context, token string) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type sessionService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	validate *Validator
	secret   []byte
	ttl      time.Duration
	log      zerolog.Logger
}

// NewSessionService creates a SessionService signing tokens with secret.
func NewSessionService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	secret string,
	ttl time.Duration,
	log zerolog.Logger,
) SessionService {
	return &sessionService{
		users:    users,
		sessions: sessions,
		validate: NewValidator(),
		secret:   []byte(secret),
		ttl:      ttl,
		log:      log.With().Str("component", "session").Logger(),
	}
}

func (s *sessionService) Login(ctx context.Context, input *model.LoginInput) (*LoginResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)) != nil {
		s.log.Info().Uint("user_id", u.ID).Msg("login rejected")
		return nil, ErrLoginFail
	}

	now := time.Now()
	sess := model.NewSession(u.ID, now, s.ttl)
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := s.sign(sess, now)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	s.log.Info().Uint("user_id", u.ID).Msg("user logged in")
	return &LoginResult{User: u.ToDTO(), Token: token, ExpiresAt: sess.ExpiresAt}, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*model.UserDTO, error) {
	claims, err := s.parse(token, true)
	if err != nil {
		return nil, ErrUnauthorized
	}

	sess, err := s.sessions.FindActive(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	if strconv.FormatUint(uint64(sess.UserID), 10) != claims.Subject {
		return nil, ErrUnauthorized
	}

	u, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u.ToDTO(), nil
}

// Logout ends the session referenced by token. Tokens that do not verify
// reference nothing and are ignored.
func (s *sessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.parse(token, false)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Info().Str("subject", claims.Subject).Msg("user logged out")
	return nil
}

func (s *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.RemoveExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("remove expired sessions: %w", err)
	}
	if n > 0 {
		s.log.Debug().Int64("removed", n).Msg("expired sessions removed")
	}
	return n, nil
}

func (s *sessionService) sign(sess *model.Session, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		Subject:   strconv.FormatUint(uint64(sess.UserID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parse verifies the token signature. With validate unset, time-based
// claims are not checked so expired sessions can still be logged out.
func (s *sessionService) parse(token string, validate bool) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if !validate {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
