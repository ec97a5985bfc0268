package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fuzumoe/alarm-service/internal/model"
)

// UserRepository defines all DB operations around users.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CountMatching(ctx context.Context, f model.UserFilter) (int64, error)
	FetchPage(ctx context.Context, f model.UserFilter, offset, limit int) ([]model.User, error)
}

// userRepo is the GORM implementation of UserRepository.
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo returns a UserRepository backed by GORM.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return mapError(r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// CountMatching counts every user matching f, ignoring pagination.
func (r *userRepo) CountMatching(ctx context.Context, f model.UserFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Scopes(matching(f)).
		Count(&count).
		Error
	return count, mapError(err)
}

// FetchPage returns one slice of the users matching f, newest id first.
func (r *userRepo) FetchPage(ctx context.Context, f model.UserFilter, offset, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Scopes(matching(f), Paginate(offset, limit)).
		Order("user_id DESC").
		Find(&users).
		Error
	if err != nil {
		return nil, mapError(err)
	}
	return users, nil
}

// matching applies the listing filter. It is shared by CountMatching and
// FetchPage so the total always describes the rows being paged.
func matching(f model.UserFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.EmailSubstring == "" {
			return db
		}
		return db.Where("email LIKE ?", containsPattern(f.EmailSubstring))
	}
}
