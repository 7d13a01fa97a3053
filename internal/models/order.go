package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status constants
const (
	OrderStatusPlaced         = "placed"
	OrderStatusPaid           = "paid"
	OrderStatusInProgress     = "inProgress"
	OrderStatusOutForDelivery = "outForDelivery"
	OrderStatusDelivered      = "delivered"
)

// Order is a customer order. The reporting API only ever reads orders.
type Order struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID string     `gorm:"type:uuid;not null;index:idx_orders_restaurant_status_created" json:"restaurant"`
	UserID       string     `gorm:"type:uuid;not null;index" json:"user"`
	Status       string     `gorm:"not null;index:idx_orders_restaurant_status_created" json:"status"`
	TotalAmount  int64      `gorm:"not null;default:0" json:"totalAmount"` // minor units (cents)
	CreatedAt    time.Time  `gorm:"not null;index:idx_orders_restaurant_status_created" json:"createdAt"`
	CartItems    []CartItem `gorm:"foreignKey:OrderID" json:"cartItems"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// Amount returns the order total as a currency amount
func (o *Order) Amount() decimal.Decimal {
	return MinorUnits(o.TotalAmount)
}

// CartItem is one line of an order. Quantity is kept exactly as stored
// because older records hold free-form strings; Price is absent on
// records that predate price capture.
type CartItem struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	OrderID    string `gorm:"type:uuid;not null;index" json:"-"`
	Position   int    `gorm:"not null;default:0" json:"-"`
	MenuItemID string `gorm:"column:menu_item_id" json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
	Price      *int64 `json:"price,omitempty"` // minor units (cents)
}

// TableName specifies the table name for CartItem
func (CartItem) TableName() string {
	return "order_cart_items"
}

// HasPrice returns true if the line item carries its own unit price
func (i *CartItem) HasPrice() bool {
	return i.Price != nil && *i.Price > 0
}

// MinorUnits converts an integer amount of cents to a currency amount
func MinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
