package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fuzumoe/alarm-service/internal/model"
	"github.com/fuzumoe/alarm-service/internal/pagination"
)

// TestUserToDTO tests the conversion of User model to UserDTO.
func TestUserToDTO(t *testing.T) {
	user := &model.User{
		ID:       1,
		Email:    "test@example.com",
		Password: "secret",
		Role:     model.RoleGuest,
	}

	dto := user.ToDTO()

	if dto.UserID != user.ID {
		t.Errorf("ToDTO UserID = %d; want %d", dto.UserID, user.ID)
	}
	if dto.Email != user.Email {
		t.Errorf("ToDTO Email = %s; want %s", dto.Email, user.Email)
	}
}

// TestUserFromCreateInput tests the conversion from CreateUserInput to a guest User.
func TestUserFromCreateInput(t *testing.T) {
	input := &model.CreateUserInput{
		Email:    "new@example.com",
		Password: "abcd1234!",
	}

	user := model.UserFromCreateInput(input)

	if user.Email != input.Email {
		t.Errorf("UserFromCreateInput Email = %s; want %s", user.Email, input.Email)
	}
	if user.Password != input.Password {
		t.Errorf("UserFromCreateInput Password = %s; want %s", user.Password, input.Password)
	}
	if user.Role != model.RoleGuest {
		t.Errorf("UserFromCreateInput Role = %s; want %s", user.Role, model.RoleGuest)
	}
	if user.ID != 0 {
		t.Errorf("UserFromCreateInput ID = %d; want 0", user.ID)
	}
	if user.IsAdmin() {
		t.Error("new users must not be admins")
	}
}

// TestUserTableName checks the table name for User model.
func TestUserTableName(t *testing.T) {
	if tn := (model.User{}).TableName(); tn != "users" {
		t.Errorf("TableName = %s; want users", tn)
	}
}

func TestUserRoleKey(t *testing.T) {
	if got := model.RoleAdmin.Key(); got != "ROLE_ADMIN" {
		t.Errorf("Key = %s; want ROLE_ADMIN", got)
	}
	if got := model.RoleGuest.Key(); got != "ROLE_GUEST" {
		t.Errorf("Key = %s; want ROLE_GUEST", got)
	}
}

// TestUserPageJSON pins the wire shape of a listing response.
func TestUserPageJSON(t *testing.T) {
	page := model.UserPage{
		Users:  []model.UserDTO{{UserID: 3, Email: "c@example.com"}},
		Paging: pagination.DefaultCalculator().ComputeWindow(1, 10, 10, 1),
	}

	raw, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	users := decoded["users"].([]any)
	first := users[0].(map[string]any)
	if first["userId"] != float64(3) || first["email"] != "c@example.com" {
		t.Errorf("unexpected user entry: %v", first)
	}

	paging := decoded["paging"].(map[string]any)
	for _, key := range []string{"page", "size", "pageCount", "prev", "next", "totalPageCount", "startPage", "endPage", "totalRowCount"} {
		if _, ok := paging[key]; !ok {
			t.Errorf("paging is missing %q", key)
		}
	}
}

func TestSession(t *testing.T) {
	now := time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC)
	s := model.NewSession(7, now, 30*time.Minute)

	if s.ID == "" {
		t.Fatal("NewSession must assign an id")
	}
	if s.UserID != 7 {
		t.Errorf("UserID = %d; want 7", s.UserID)
	}
	if !s.ExpiresAt.Equal(now.Add(30 * time.Minute)) {
		t.Errorf("ExpiresAt = %v; want %v", s.ExpiresAt, now.Add(30*time.Minute))
	}
	if s.Expired(now) {
		t.Error("session should be valid right after creation")
	}
	if !s.Expired(s.ExpiresAt) {
		t.Error("session should be expired at its expiry instant")
	}
	if other := model.NewSession(7, now, time.Minute); other.ID == s.ID {
		t.Error("session ids must be unique")
	}
	if tn := (model.Session{}).TableName(); tn != "sessions" {
		t.Errorf("TableName = %s; want sessions", tn)
	}
}
