package model

import (
	"time"

	"github.com/fuzumoe/alarm-service/internal/pagination"
)

// UserRole represents different user privilege levels
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleGuest UserRole = "GUEST"
)

// Key returns the authority name of the role.
func (r UserRole) Key() string {
	return "ROLE_" + string(r)
}

// User represents a registered account.
type User struct {
	ID        uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"userId"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName returns the name of the table for User.
func (User) TableName() string {
	return "users"
}

// UserDTO is used for sending user data in HTTP responses.
type UserDTO struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

// CreateUserInput defines expected fields for registering a user.
type CreateUserInput struct {
	Email    string `json:"email" validate:"notblank,email"`
	Password string `json:"password" validate:"notblank,password"`
}

// LoginInput defines expected fields for a login request.
type LoginInput struct {
	Email    string `json:"email" validate:"notblank,email"`
	Password string `json:"password" validate:"notblank,password"`
}

// UserFilter narrows a user listing. Count and fetch apply the same filter.
type UserFilter struct {
	EmailSubstring string `form:"searchEmail" json:"searchEmail"`
}

// UserSearchInput is a listing request: a filter plus the page to show.
type UserSearchInput struct {
	UserFilter
	pagination.Request
}

// UserPage is one page of users together with its navigation window.
type UserPage struct {
	Users  []UserDTO         `json:"users"`
	Paging pagination.Window `json:"paging"`
}

// ToDTO converts the User model into a UserDTO for responses.
func (u *User) ToDTO() *UserDTO {
	return &UserDTO{
		UserID: u.ID,
		Email:  u.Email,
	}
}

// UserFromCreateInput maps CreateUserInput to a guest User. The password is
// copied as given; callers hash it before persisting.
func UserFromCreateInput(input *CreateUserInput) *User {
	return &User{
		Email:    input.Email,
		Password: input.Password,
		Role:     RoleGuest,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
