package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("incorrect username or password")
var ErrTokenInvalid = errors.New("invalid token")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username or email already exists")
var ErrForbidden = errors.New("unauthorized access")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidInput = errors.New("invalid user input")

// User models an authenticated principal. The password digest is stored
// instead of the plaintext and is never serialized outward.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
