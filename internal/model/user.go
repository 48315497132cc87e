package model

import "time"

// User represents a user account in the database. PasswordHash never leaves
// the server; responses use UserResponse instead.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	ImagePath    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupRequest represents the multipart fields of a signup request.
// The avatar image arrives as a separate file part.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned from signup and login.
type AuthResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// UserResponse represents user data safe for API responses (no credentials).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Image      string    `json:"image"`
	PlaceCount int       `json:"placeCount"`
	CreatedAt  time.Time `json:"createdAt"`
}
