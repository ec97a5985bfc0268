package app_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/fuzumoe/alarm-service/configs"
	"github.com/fuzumoe/alarm-service/internal/app"
	"github.com/fuzumoe/alarm-service/internal/logger"
	"github.com/fuzumoe/alarm-service/internal/repository"
)

// Save original hook functions
var (
	origLoadConfig = app.LoadConfig
	origNewLogger  = app.NewLogger
	origNewDB      = app.NewDB
	origMigrateDB  = app.MigrateDB
)

func testConfig() *configs.Config {
	return &configs.Config{
		ServerHost:       "127.0.0.1",
		ServerPort:       "0",
		ServerMode:       gin.TestMode,
		AppEnv:           "prod",
		DatabaseURL:      "dsn",
		LogLevel:         "error",
		SessionSecret:    "test-secret",
		SessionLifetime:  30 * time.Minute,
		SessionCookie:    "SESSION",
		DefaultLocale:    "ko",
		PageSizeDefault:  10,
		PageCountDefault: 10,
		ShutdownTimeout:  time.Second,
	}
}

// setupHooks replaces the hooks for a successful run.
func setupHooks(t *testing.T) {
	t.Helper()
	app.LoadConfig = func() (*configs.Config, error) {
		return testConfig(), nil
	}
	app.NewLogger = func(logger.Config) (zerolog.Logger, error) {
		return zerolog.Nop(), nil
	}
	app.NewDB = func(dsn string) (*gorm.DB, error) {
		assert.Equal(t, "dsn", dsn)
		return &gorm.DB{}, nil
	}
	app.MigrateDB = func(m repository.Migrator) error {
		return nil
	}
	t.Cleanup(teardownHooks)
}

// teardownHooks restores original hook functions.
func teardownHooks() {
	app.LoadConfig = origLoadConfig
	app.NewLogger = origNewLogger
	app.NewDB = origNewDB
	app.MigrateDB = origMigrateDB
}

func TestRunContext(t *testing.T) {
	t.Run("Config Error", func(t *testing.T) {
		setupHooks(t)
		app.LoadConfig = func() (*configs.Config, error) {
			return nil, errors.New("fail load")
		}

		err := app.RunContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config load error")
	})

	t.Run("Logger Error", func(t *testing.T) {
		setupHooks(t)
		app.NewLogger = func(logger.Config) (zerolog.Logger, error) {
			return zerolog.Nop(), errors.New("bad level")
		}

		err := app.RunContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger init error")
	})

	t.Run("DB Error", func(t *testing.T) {
		setupHooks(t)
		app.NewDB = func(dsn string) (*gorm.DB, error) {
			return nil, errors.New("fail db")
		}

		err := app.RunContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db init error")
	})

	t.Run("Migration Error", func(t *testing.T) {
		setupHooks(t)
		app.MigrateDB = func(m repository.Migrator) error {
			return errors.New("fail migrate")
		}

		err := app.RunContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration error")
	})

	t.Run("Build Error", func(t *testing.T) {
		setupHooks(t)
		app.LoadConfig = func() (*configs.Config, error) {
			cfg := testConfig()
			cfg.DefaultLocale = "xx"
			return cfg, nil
		}

		err := app.RunContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "build error")
	})

	t.Run("Graceful Shutdown", func(t *testing.T) {
		setupHooks(t)
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		assert.NoError(t, app.RunContext(ctx))
	})

	t.Run("Listen Error", func(t *testing.T) {
		setupHooks(t)
		app.LoadConfig = func() (*configs.Config, error) {
			cfg := testConfig()
			cfg.ServerPort = "not-a-port"
			return cfg, nil
		}

		err := app.RunContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http server error")
	})
}

func TestBuild(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	router, sessions, err := app.Build(testConfig(), db, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, sessions)

	serve := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	t.Run("health checks database and sessions", func(t *testing.T) {
		mock.ExpectPing()
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `sessions` WHERE expires_at > \\?").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rec := serve(http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"activeSessions":2`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("listing requires a session", func(t *testing.T) {
		rec := serve(http.MethodGet, "/api/v1/users")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":401`)
	})

	t.Run("lookup requires a session", func(t *testing.T) {
		rec := serve(http.MethodGet, "/api/v1/users/1?lang=en")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Login required.")
	})

	t.Run("logout without a session", func(t *testing.T) {
		rec := serve(http.MethodPost, "/api/v1/logout")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
