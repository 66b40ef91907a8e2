// Package auth issues and verifies session tokens and credentials.
package auth

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("authentication invalid")

	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Claims carried by every session token.
type Claims struct {
	UserID      uuid.UUID  `json:"userId"`
	Username    string     `json:"username"`
	PhoneNumber string     `json:"phoneNumber"`
	Role        types.Role `json:"role"`
	Email       string     `json:"email"`
	jwt.RegisteredClaims
}

// CreateJWT signs a session token for the given user with the configured
// secret and lifetime.
func CreateJWT(user *types.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:      user.ID,
		Username:    user.Username,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Email:       user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(state.JWTLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(state.Config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyJWT checks signature and expiry and returns the decoded claims.
func VerifyJWT(tokenString string) (*Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (any, error) {
			return []byte(state.Config.Auth.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

// HashPassword applies a one-way salted hash before the credential is persisted.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// ComparePassword reports whether the candidate matches the stored hash.
func ComparePassword(hashed, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(candidate)) == nil
}

// IsEmailValid applies the basic pattern check used at registration and on
// account updates.
func IsEmailValid(email string) bool {
	return emailRegex.MatchString(email)
}
