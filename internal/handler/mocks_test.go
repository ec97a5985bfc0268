package handler_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/alarm-service/internal/i18n"
	"github.com/fuzumoe/alarm-service/internal/model"
	"github.com/fuzumoe/alarm-service/internal/response"
	"github.com/fuzumoe/alarm-service/internal/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Join(ctx context.Context, input *model.CreateUserInput) (uint, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uint) (*model.UserDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserDTO), args.Error(1)
}

type MockUserLister struct {
	mock.Mock
}

func (m *MockUserLister) ListUsers(ctx context.Context, in model.UserSearchInput) (*model.UserPage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserPage), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, input *model.LoginInput) (*service.LoginResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockSessionService) Resolve(ctx context.Context, token string) (*model.UserDTO, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserDTO), args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionService) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) *service.HealthStatus {
	return m.Called(ctx).Get(0).(*service.HealthStatus)
}

func newWriter(t *testing.T) *response.Writer {
	t.Helper()
	bundle, err := i18n.New("ko")
	require.NoError(t, err)
	return response.NewWriter(bundle, zerolog.Nop())
}
