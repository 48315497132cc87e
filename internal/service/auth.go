package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/placefolio/placefolio-go/internal/crypto"
	"github.com/placefolio/placefolio-go/internal/model"
	"github.com/placefolio/placefolio-go/internal/repository"
	"github.com/placefolio/placefolio-go/internal/storage"
)

// MinPasswordLength is the signup password minimum.
const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid credentials, could not log you in")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailInvalid       = errors.New("a valid email is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrImageRequired      = errors.New("an image is required")
	ErrEmailTaken         = errors.New("user exists already, please login instead")
)

// AuthService handles signup, login and token issuance.
type AuthService struct {
	repo       *repository.UserRepository
	images     *storage.ImageStore
	jwtSecret  string
	jwtExpiry  time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, images *storage.ImageStore, secret string, expiry time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		repo:       repo,
		images:     images,
		jwtSecret:  secret,
		jwtExpiry:  expiry,
		bcryptCost: bcryptCost,
	}
}

// Signup creates a new user account with an empty place set and returns an
// auth token. The plaintext password is hashed before storage and never
// logged.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest, image io.Reader, imageName string) (model.AuthResponse, error) {
	if req.Name == "" {
		return model.AuthResponse{}, ErrNameRequired
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return model.AuthResponse{}, ErrEmailInvalid
	}
	if len(req.Password) < MinPasswordLength {
		return model.AuthResponse{}, ErrPasswordTooShort
	}
	if image == nil {
		return model.AuthResponse{}, ErrImageRequired
	}

	hash, err := crypto.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return model.AuthResponse{}, err
	}

	imagePath, err := s.images.Save(image, imageName)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		ImagePath:    imagePath,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if removeErr := s.images.Remove(imagePath); removeErr != nil {
			slog.Warn("could not remove orphaned signup image", "path", imagePath, "error", removeErr)
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	}, nil
}

// Login authenticates a user and returns an auth token. Unknown email and
// wrong password both return ErrInvalidCredentials so the response does not
// reveal which check failed.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	}, nil
}
