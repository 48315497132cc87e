package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/placefolio/placefolio-go/internal/apperror"
	"github.com/placefolio/placefolio-go/internal/geocode"
	"github.com/placefolio/placefolio-go/internal/service"
	"github.com/placefolio/placefolio-go/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// respondError normalizes any handler-level error into the single client
// error shape. Unrecognized errors become a generic 500 with the given
// fallback message; the cause stays in the logs.
func respondError(w http.ResponseWriter, err error, fallback string) {
	appErr := toAppError(err, fallback)
	if appErr.Status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, appErr.Status, errorResponse(appErr.Message))
}

// toAppError maps service errors onto the message+status error taxonomy.
func toAppError(err error, fallback string) *apperror.Error {
	if appErr := apperror.From(err); appErr != nil {
		return appErr
	}

	switch {
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrEmailInvalid),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrImageRequired),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrDescriptionTooShort),
		errors.Is(err, service.ErrAddressRequired),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, geocode.ErrAddressNotFound),
		errors.Is(err, storage.ErrUnsupportedImageType):
		return apperror.Invalid(err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotOwner):
		return apperror.Unauthorized(err.Error())
	case errors.Is(err, service.ErrPlaceNotFound),
		errors.Is(err, service.ErrCreatorNotFound):
		return apperror.NotFound(err.Error())
	default:
		return apperror.Internal(fallback)
	}
}
