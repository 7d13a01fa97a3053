package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mern-eats/sales-api/internal/models"
	"gorm.io/gorm"
)

// SQLSTATE raised when a malformed uuid literal is compared to a uuid column
const pgInvalidTextRepresentation = "22P02"

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) FindOwned(ctx context.Context, restaurantID, userID string) (*models.Restaurant, error) {
	if restaurantID == "" || userID == "" {
		return nil, ErrNotFound
	}

	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", restaurantID, userID).
		First(&restaurant).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &restaurant, nil
}

// translateError folds "no such row" style failures into ErrNotFound
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || isInvalidTextRepresentation(err) {
		return ErrNotFound
	}
	return err
}

func isInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation
}
