package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/placefolio/placefolio-go/internal/model"
)

var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository handles place persistence operations. A place row and the
// owning user's back-reference row in user_places are always written and
// removed inside one transaction, so neither is ever visible without the
// other.
type PlaceRepository struct {
	db *sql.DB
}

// NewPlaceRepository creates a new PlaceRepository.
func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// GetByID retrieves a place by its ID.
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	query := `SELECT id, title, description, address, lat, lng, image_path, creator_id, created_at, updated_at
		FROM places WHERE id = ?`

	place := &model.Place{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&place.ID, &place.Title, &place.Description, &place.Address,
		&place.Lat, &place.Lng, &place.ImagePath, &place.CreatorID,
		&place.CreatedAt, &place.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}

	return place, nil
}

// ListByCreator retrieves all places owned by a user, newest first. The join
// goes through user_places so the back-reference set is authoritative.
func (r *PlaceRepository) ListByCreator(ctx context.Context, userID string) ([]model.Place, error) {
	query := `SELECT p.id, p.title, p.description, p.address, p.lat, p.lng, p.image_path, p.creator_id, p.created_at, p.updated_at
		FROM places p
		INNER JOIN user_places up ON up.place_id = p.id
		WHERE up.user_id = ?
		ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []model.Place
	for rows.Next() {
		var p model.Place
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Address,
			&p.Lat, &p.Lng, &p.ImagePath, &p.CreatorID,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		places = append(places, p)
	}

	return places, rows.Err()
}

// CreateWithOwner inserts a place and the creator's back-reference as a single
// transaction. On any failure both writes roll back.
func (r *PlaceRepository) CreateWithOwner(ctx context.Context, place *model.Place) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO places (id, title, description, address, lat, lng, image_path, creator_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		place.ID, place.Title, place.Description, place.Address,
		place.Lat, place.Lng, place.ImagePath, place.CreatorID,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_places (user_id, place_id) VALUES (?, ?)`,
		place.CreatorID, place.ID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Update persists the two mutable place fields.
func (r *PlaceRepository) Update(ctx context.Context, id, title, description string) error {
	query := `UPDATE places SET title = ?, description = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, title, description, id)
	return err
}

// DeleteWithOwner removes a place and its back-reference from the owning
// user's place set as a single transaction, the reverse of CreateWithOwner.
func (r *PlaceRepository) DeleteWithOwner(ctx context.Context, placeID, creatorID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM user_places WHERE user_id = ? AND place_id = ?`,
		creatorID, placeID,
	)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM places WHERE id = ?`, placeID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPlaceNotFound
	}

	return tx.Commit()
}
