package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/placefolio/placefolio-go/internal/model"
	"github.com/placefolio/placefolio-go/internal/service"
)

// maxUploadSize bounds multipart request bodies (field values plus image).
const maxUploadSize = 32 << 20 // 32MB

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignup handles POST /api/users/signup requests. The body is
// multipart: name, email, password fields plus an image file part.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart request body"))
		return
	}

	req := model.SignupRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	var image io.Reader
	var imageName string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image = file
		imageName = header.Filename
	}

	resp, err := h.service.Signup(r.Context(), req, image, imageName)
	if err != nil {
		respondError(w, err, "signing up failed, please try again later")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/users/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		respondError(w, err, "login failed, please try again later")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
