package model

import "time"

// Place represents a user-owned location record. Lat/Lng are derived from the
// address once at creation and never change afterwards.
type Place struct {
	ID          string
	Title       string
	Description string
	Address     string
	Lat         float64
	Lng         float64
	ImagePath   string
	CreatorID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreatePlaceRequest represents the multipart fields of a place creation
// request. The creator comes from the auth token, the image from a file part.
type CreatePlaceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// UpdatePlaceRequest carries the two mutable place fields.
type UpdatePlaceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Location is the geocoded coordinate pair embedded in place responses.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceResponse represents a place in API responses.
type PlaceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Location    Location  `json:"location"`
	Image       string    `json:"image"`
	Creator     string    `json:"creator"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToResponse converts a Place to its client representation.
func (p *Place) ToResponse() PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location:    Location{Lat: p.Lat, Lng: p.Lng},
		Image:       p.ImagePath,
		Creator:     p.CreatorID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
