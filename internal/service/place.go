package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/placefolio/placefolio-go/internal/geocode"
	"github.com/placefolio/placefolio-go/internal/model"
	"github.com/placefolio/placefolio-go/internal/repository"
	"github.com/placefolio/placefolio-go/internal/storage"
)

// MinDescriptionLength is the place description minimum.
const MinDescriptionLength = 5

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionTooShort = errors.New("description must be at least 5 characters")
	ErrAddressRequired     = errors.New("address is required")
	ErrPlaceNotFound       = errors.New("could not find a place for the given id")
	ErrCreatorNotFound     = errors.New("could not find user for provided id")
	ErrNotOwner            = errors.New("you are not allowed to modify this place")
)

// PlaceService orchestrates place CRUD: validation, geocoding, ownership
// checks and the transactional place/user consistency protocol.
type PlaceService struct {
	places   *repository.PlaceRepository
	users    *repository.UserRepository
	geocoder geocode.Resolver
	images   *storage.ImageStore
}

// NewPlaceService creates a new PlaceService.
func NewPlaceService(places *repository.PlaceRepository, users *repository.UserRepository, geocoder geocode.Resolver, images *storage.ImageStore) *PlaceService {
	return &PlaceService{
		places:   places,
		users:    users,
		geocoder: geocoder,
		images:   images,
	}
}

// Get returns a single place by ID.
func (s *PlaceService) Get(ctx context.Context, id string) (model.PlaceResponse, error) {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return model.PlaceResponse{}, ErrPlaceNotFound
		}
		return model.PlaceResponse{}, err
	}
	return place.ToResponse(), nil
}

// ListByUser returns all places owned by a user. An unknown user is an error;
// a known user with no places gets an empty list.
func (s *PlaceService) ListByUser(ctx context.Context, userID string) ([]model.PlaceResponse, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCreatorNotFound
	}

	places, err := s.places.ListByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.PlaceResponse, len(places))
	for i := range places {
		result[i] = places[i].ToResponse()
	}
	return result, nil
}

// Create validates the request, geocodes the address, verifies the creator
// exists, then persists the place and the creator's back-reference in one
// transaction. A geocoding failure happens before any write, so nothing needs
// rolling back in that case.
func (s *PlaceService) Create(ctx context.Context, creatorID string, req model.CreatePlaceRequest, image io.Reader, imageName string) (model.PlaceResponse, error) {
	if req.Title == "" {
		return model.PlaceResponse{}, ErrTitleRequired
	}
	if len(req.Description) < MinDescriptionLength {
		return model.PlaceResponse{}, ErrDescriptionTooShort
	}
	if req.Address == "" {
		return model.PlaceResponse{}, ErrAddressRequired
	}
	if image == nil {
		return model.PlaceResponse{}, ErrImageRequired
	}

	lat, lng, err := s.geocoder.Resolve(ctx, req.Address)
	if err != nil {
		return model.PlaceResponse{}, err
	}

	exists, err := s.users.Exists(ctx, creatorID)
	if err != nil {
		return model.PlaceResponse{}, err
	}
	if !exists {
		return model.PlaceResponse{}, ErrCreatorNotFound
	}

	imagePath, err := s.images.Save(image, imageName)
	if err != nil {
		return model.PlaceResponse{}, err
	}

	place := &model.Place{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Lat:         lat,
		Lng:         lng,
		ImagePath:   imagePath,
		CreatorID:   creatorID,
	}

	if err := s.places.CreateWithOwner(ctx, place); err != nil {
		if removeErr := s.images.Remove(imagePath); removeErr != nil {
			slog.Warn("could not remove orphaned place image", "path", imagePath, "error", removeErr)
		}
		return model.PlaceResponse{}, err
	}

	return place.ToResponse(), nil
}

// Update applies the two mutable fields. Only the creator may edit.
func (s *PlaceService) Update(ctx context.Context, requesterID, placeID string, req model.UpdatePlaceRequest) (model.PlaceResponse, error) {
	if req.Title == "" {
		return model.PlaceResponse{}, ErrTitleRequired
	}
	if len(req.Description) < MinDescriptionLength {
		return model.PlaceResponse{}, ErrDescriptionTooShort
	}

	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return model.PlaceResponse{}, ErrPlaceNotFound
		}
		return model.PlaceResponse{}, err
	}

	if place.CreatorID != requesterID {
		return model.PlaceResponse{}, ErrNotOwner
	}

	if err := s.places.Update(ctx, placeID, req.Title, req.Description); err != nil {
		return model.PlaceResponse{}, err
	}

	place.Title = req.Title
	place.Description = req.Description
	return place.ToResponse(), nil
}

// Delete removes a place and the owner's back-reference transactionally, then
// deletes the stored image best-effort. The image removal runs after the
// transaction commits and never fails the request.
func (s *PlaceService) Delete(ctx context.Context, requesterID, placeID string) error {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return ErrPlaceNotFound
		}
		return err
	}

	if place.CreatorID != requesterID {
		return ErrNotOwner
	}

	if err := s.places.DeleteWithOwner(ctx, placeID, place.CreatorID); err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return ErrPlaceNotFound
		}
		return err
	}

	imagePath := place.ImagePath
	go func() {
		if err := s.images.Remove(imagePath); err != nil {
			slog.Warn("could not remove deleted place image", "path", imagePath, "error", err)
		}
	}()

	return nil
}
