package service

import (
	"github.com/rs/zerolog"

	"github.com/fuzumoe/alarm-service/internal/repository"
)

// NewUserServiceWithCost lets tests hash with a cheap bcrypt cost.
func NewUserServiceWithCost(repo repository.UserRepository, cost int, log zerolog.Logger) UserService {
	return newUserService(repo, cost, log)
}
