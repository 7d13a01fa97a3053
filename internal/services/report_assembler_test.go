package services

import (
	"testing"
	"time"

	"github.com/jaswdr/faker"
	"github.com/mern-eats/sales-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeOrders(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := SummarizeOrders([]models.Order{
		paidOrder("o1", at, 1000),
		paidOrder("o2", at, 2000),
		paidOrder("o3", at, 3001),
	})

	assert.Equal(t, 3, got.TotalOrders)
	assertDecimal(t, "60.01", got.TotalRevenue)
	assert.True(t, got.AverageOrderValue.Mul(decimalFromInt(3)).Round(2).Equal(got.TotalRevenue))

	empty := SummarizeOrders(nil)
	assert.Zero(t, empty.TotalOrders)
	assert.True(t, empty.AverageOrderValue.IsZero())
}

func TestAssembleSalesReport_DoesNotMutateOrders(t *testing.T) {
	fake := faker.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	orders := randomOrders(fake, 100, start, end)

	snapshot := make([]models.Order, len(orders))
	for i := range orders {
		snapshot[i] = orders[i]
		snapshot[i].CartItems = append([]models.CartItem(nil), orders[i].CartItems...)
	}

	report := AssembleSalesReport(orders, DateRange{Start: start, End: end}, AssembleOptions{Location: time.UTC, TopItems: 3})

	require.NotNil(t, report)
	assert.Equal(t, snapshot, orders)
	assert.LessOrEqual(t, len(report.PopularItems), 3)
	assert.Len(t, report.RevenueByPeriod.Daily, 31)
	assert.Equal(t, len(orders), report.Summary.TotalOrders)
}
