package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mern-eats/sales-api/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no record
var ErrNotFound = errors.New("record not found")

// RestaurantRepository looks up restaurants by owner
type RestaurantRepository interface {
	// FindOwned returns the restaurant only when userID operates it.
	// A missing restaurant and a foreign one both yield ErrNotFound.
	FindOwned(ctx context.Context, restaurantID, userID string) (*models.Restaurant, error)
}

// OrderRepository reads settled orders for reporting
type OrderRepository interface {
	// FindPaid returns paid orders of the restaurant created within
	// [start, end] inclusive, in no particular order.
	FindPaid(ctx context.Context, restaurantID string, start, end time.Time) ([]models.Order, error)
}

// Repositories holds all repository instances
type Repositories struct {
	Restaurant RestaurantRepository
	Order      OrderRepository
}

// NewRepositories creates PostgreSQL backed repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Restaurant: NewRestaurantRepository(db),
		Order:      NewOrderRepository(db),
	}
}

// NewMongoRepositories creates MongoDB backed repositories
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Restaurant: NewMongoRestaurantRepository(db),
		Order:      NewMongoOrderRepository(db),
	}
}
