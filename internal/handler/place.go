package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/placefolio/placefolio-go/internal/middleware"
	"github.com/placefolio/placefolio-go/internal/model"
	"github.com/placefolio/placefolio-go/internal/service"
)

// PlaceHandler handles HTTP requests for place operations.
type PlaceHandler struct {
	service *service.PlaceService
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(svc *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: svc}
}

// HandleGet handles GET /api/places/{pid} requests.
func (h *PlaceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "pid")

	place, err := h.service.Get(r.Context(), placeID)
	if err != nil {
		respondError(w, err, "something went wrong, could not find the place")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"place": place})
}

// HandleListByUser handles GET /api/places/user/{uid} requests. An unknown
// user is a 404; a known user with no places gets an empty list.
func (h *PlaceHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uid")

	places, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		respondError(w, err, "fetching places failed, please try again later")
		return
	}
	if places == nil {
		places = []model.PlaceResponse{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"places": places})
}

// HandleCreate handles POST /api/places requests. The body is multipart:
// title, description, address fields plus an image file part. The creator is
// the authenticated user, not a body field.
func (h *PlaceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("authentication failed"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart request body"))
		return
	}

	req := model.CreatePlaceRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Address:     r.FormValue("address"),
	}

	var image io.Reader
	var imageName string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image = file
		imageName = header.Filename
	}

	place, err := h.service.Create(r.Context(), userID, req, image, imageName)
	if err != nil {
		respondError(w, err, "creating place failed, please try again")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"place": place})
}

// HandleUpdate handles PATCH /api/places/{pid} requests.
func (h *PlaceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("authentication failed"))
		return
	}

	placeID := chi.URLParam(r, "pid")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdatePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	place, err := h.service.Update(r.Context(), userID, placeID, req)
	if err != nil {
		respondError(w, err, "something went wrong, could not update place")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"place": place})
}

// HandleDelete handles DELETE /api/places/{pid} requests.
func (h *PlaceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse("authentication failed"))
		return
	}

	placeID := chi.URLParam(r, "pid")

	if err := h.service.Delete(r.Context(), userID, placeID); err != nil {
		respondError(w, err, "something went wrong, could not delete place")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "place deleted successfully"})
}
