package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/jaswdr/faker"
	"github.com/mern-eats/sales-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func price(cents int64) *int64 {
	return &cents
}

func line(menuItemID, name, quantity string, unitPrice *int64) models.CartItem {
	return models.CartItem{MenuItemID: menuItemID, Name: name, Quantity: quantity, Price: unitPrice}
}

func paidOrder(id string, at time.Time, cents int64, items ...models.CartItem) models.Order {
	return models.Order{
		ID:           id,
		RestaurantID: "r1",
		Status:       models.OrderStatusPaid,
		TotalAmount:  cents,
		CreatedAt:    at,
		CartItems:    items,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), append([]any{fmt.Sprintf("want %s, got %s", want, got)}, msgAndArgs...)...)
}

// randomOrders generates n paid orders created within [start, end]
func randomOrders(fake faker.Faker, n int, start, end time.Time) []models.Order {
	menu := []string{"m1", "m2", "m3", "m4", "m5"}
	orders := make([]models.Order, 0, n)
	for i := 0; i < n; i++ {
		items := make([]models.CartItem, 0, 3)
		for j := 0; j < fake.IntBetween(1, 3); j++ {
			var p *int64
			if fake.Bool() {
				p = price(fake.Int64Between(100, 3000))
			}
			id := menu[fake.IntBetween(0, len(menu)-1)]
			items = append(items, line(id, "Item "+id, fmt.Sprint(fake.IntBetween(0, 5)), p))
		}
		orders = append(orders, paidOrder(
			fake.UUID().V4(),
			fake.Time().TimeBetween(start, end).UTC(),
			fake.Int64Between(0, 100000),
			items...,
		))
	}
	return orders
}

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
