package auth

import (
	"testing"
	"time"

	"github.com/charlesdev96/charlie-chat-app/config"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
)

func setupTestConfig(t *testing.T) {
	t.Helper()

	state.Config = &config.Config{}
	state.Config.Auth.JWTSecret = "test-secret-do-not-use"
	state.JWTLifetime = time.Hour
}

func TestJWTRoundTrip(t *testing.T) {
	setupTestConfig(t)

	user := &types.User{
		Username:    "charlie",
		Email:       "charlie@example.com",
		PhoneNumber: "08012345678",
		Role:        types.RoleUser,
	}
	user.ID = uuid.New()

	token, err := CreateJWT(user)
	if err != nil {
		t.Fatalf("CreateJWT: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("UserID = %s, want %s", claims.UserID, user.ID)
	}
	if claims.Username != user.Username {
		t.Errorf("Username = %q, want %q", claims.Username, user.Username)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.PhoneNumber != user.PhoneNumber {
		t.Errorf("PhoneNumber = %q, want %q", claims.PhoneNumber, user.PhoneNumber)
	}
	if claims.Role != types.RoleUser {
		t.Errorf("Role = %q, want %q", claims.Role, types.RoleUser)
	}
}

func TestVerifyJWTRejectsTampered(t *testing.T) {
	setupTestConfig(t)

	user := &types.User{Username: "charlie", Role: types.RoleUser}
	user.ID = uuid.New()

	token, err := CreateJWT(user)
	if err != nil {
		t.Fatalf("CreateJWT: %v", err)
	}

	if _, err := VerifyJWT(token + "x"); err == nil {
		t.Error("expected tampered token to be rejected")
	}

	if _, err := VerifyJWT("not-a-token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	setupTestConfig(t)

	user := &types.User{Username: "charlie", Role: types.RoleUser}
	user.ID = uuid.New()

	token, err := CreateJWT(user)
	if err != nil {
		t.Fatalf("CreateJWT: %v", err)
	}

	state.Config.Auth.JWTSecret = "a-different-secret"

	if _, err := VerifyJWT(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestVerifyJWTRejectsExpired(t *testing.T) {
	setupTestConfig(t)
	state.JWTLifetime = -time.Minute

	user := &types.User{Username: "charlie", Role: types.RoleUser}
	user.ID = uuid.New()

	token, err := CreateJWT(user)
	if err != nil {
		t.Fatalf("CreateJWT: %v", err)
	}

	if _, err := VerifyJWT(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestVerifyJWTRejectsUnknownRole(t *testing.T) {
	setupTestConfig(t)

	user := &types.User{Username: "charlie", Role: types.Role("superuser")}
	user.ID = uuid.New()

	token, err := CreateJWT(user)
	if err != nil {
		t.Fatalf("CreateJWT: %v", err)
	}

	if _, err := VerifyJWT(token); err == nil {
		t.Error("expected token with unknown role to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hashed == "hunter22" {
		t.Fatal("password stored in plain text")
	}

	if !ComparePassword(hashed, "hunter22") {
		t.Error("correct password rejected")
	}

	if ComparePassword(hashed, "hunter23") {
		t.Error("wrong password accepted")
	}
}

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"charlie@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"charlie", false},
		{"charlie@example", false},
		{"@example.com", false},
		{"charlie@.com", false},
		{"char lie@example.com", false},
	}

	for _, tc := range cases {
		if got := IsEmailValid(tc.email); got != tc.want {
			t.Errorf("IsEmailValid(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
