package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/placefolio/placefolio-go/internal/crypto"
	"github.com/placefolio/placefolio-go/internal/model"
	"github.com/placefolio/placefolio-go/internal/repository"
	"github.com/placefolio/placefolio-go/internal/storage"
)

func newAuthServiceWithMock(t *testing.T) (*AuthService, sqlmock.Sqlmock, *storage.ImageStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	images, err := storage.NewImageStore(t.TempDir())
	require.NoError(t, err)

	svc := NewAuthService(repository.NewUserRepository(db), images, "test-secret", time.Hour, bcrypt.MinCost)
	return svc, mock, images
}

func validSignup() model.SignupRequest {
	return model.SignupRequest{Name: "A", Email: "a@a.com", Password: "secret1"}
}

func TestSignupValidation(t *testing.T) {
	svc := NewAuthService(nil, nil, "test-secret", time.Hour, bcrypt.MinCost)

	cases := []struct {
		name string
		req  model.SignupRequest
		want error
	}{
		{"empty name", model.SignupRequest{Email: "a@a.com", Password: "secret1"}, ErrNameRequired},
		{"bad email", model.SignupRequest{Name: "A", Email: "not-an-email", Password: "secret1"}, ErrEmailInvalid},
		{"short password", model.SignupRequest{Name: "A", Email: "a@a.com", Password: "short"}, ErrPasswordTooShort},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), c.req, strings.NewReader("img"), "a.png")
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestSignupRequiresImage(t *testing.T) {
	svc := NewAuthService(nil, nil, "test-secret", time.Hour, bcrypt.MinCost)

	_, err := svc.Signup(context.Background(), validSignup(), nil, "")
	assert.ErrorIs(t, err, ErrImageRequired)
}

func TestSignupSuccess(t *testing.T) {
	svc, mock, _ := newAuthServiceWithMock(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))

	resp, err := svc.Signup(context.Background(), validSignup(), strings.NewReader("img"), "a.png")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@a.com", resp.Email)
	assert.NotEmpty(t, resp.UserID)

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "a@a.com", claims.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, mock, images := newAuthServiceWithMock(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062: Duplicate entry 'a@a.com' for key 'users.email'"))

	_, err := svc.Signup(context.Background(), validSignup(), strings.NewReader("img"), "a.png")
	assert.ErrorIs(t, err, ErrEmailTaken)

	entries, err := os.ReadDir(images.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "no image should remain after a failed signup")
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock, _ := newAuthServiceWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, _ := newAuthServiceWithMock(t)

	hash, err := crypto.HashPassword("right-password", bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@a.com").
		WillReturnRows(userRow(hash, now))

	_, err = svc.Login(context.Background(), model.LoginRequest{Email: "a@a.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	svc, mock, _ := newAuthServiceWithMock(t)

	hash, err := crypto.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("a@a.com").
		WillReturnRows(userRow(hash, now))

	resp, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@a.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "u1", resp.UserID)
	assert.NotEmpty(t, resp.Token)
	// The stored hash must never appear in the response shape.
	assert.NotContains(t, resp.Token, hash)
}

func userRow(hash string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "image_path", "created_at", "updated_at"}).
		AddRow("u1", "A", "a@a.com", hash, "img.jpg", now, now)
}
