package repository

import (
	"context"
	"time"

	"github.com/mern-eats/sales-api/internal/models"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindPaid(ctx context.Context, restaurantID string, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.paidOrdersQuery(ctx, restaurantID, start, end).
		Preload("CartItems", cartItemsInPosition).
		Find(&orders).Error
	if err != nil {
		if translateError(err) == ErrNotFound {
			return []models.Order{}, nil
		}
		return nil, err
	}
	return orders, nil
}

// paidOrdersQuery selects paid orders of a restaurant created within
// [start, end], both bounds inclusive
func (r *orderRepository) paidOrdersQuery(ctx context.Context, restaurantID string, start, end time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Where("status = ?", models.OrderStatusPaid).
		Where("created_at >= ? AND created_at <= ?", start, end)
}

func cartItemsInPosition(db *gorm.DB) *gorm.DB {
	return db.Order("order_cart_items.position ASC")
}
