package models

import "time"

// Restaurant is the operator-owned restaurant profile. Only ownership is
// consulted by the reporting API.
type Restaurant struct {
	ID                    string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                string    `gorm:"type:uuid;not null;index" json:"user"`
	RestaurantName        string    `gorm:"not null" json:"restaurantName"`
	City                  string    `gorm:"not null" json:"city"`
	Country               string    `gorm:"not null" json:"country"`
	DeliveryPrice         int64     `gorm:"not null" json:"deliveryPrice"`
	EstimatedDeliveryTime int       `gorm:"not null" json:"estimatedDeliveryTime"`
	ImageURL              string    `json:"imageUrl"`
	LastUpdated           time.Time `json:"lastUpdated"`
}

// TableName specifies the table name for Restaurant
func (Restaurant) TableName() string {
	return "restaurants"
}
