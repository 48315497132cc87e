package handler

import (
	"net/http"

	"github.com/placefolio/placefolio-go/internal/service"
)

// UserHandler handles HTTP requests for user listing.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleList handles GET /api/users requests. Password hashes are excluded
// from the representation under all circumstances.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, err, "fetching users failed, please try again later")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}
