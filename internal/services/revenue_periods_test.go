package services

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/jaswdr/faker"
	"github.com/mern-eats/sales-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOWeekLabel(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2023-01-01", "2022-W52"},
		{"2021-01-04", "2021-W01"},
		{"2024-12-31", "2025-W01"},
		{"2020-12-31", "2020-W53"},
		{"2021-01-03", "2020-W53"},
		{"2024-06-15", "2024-W24"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ISOWeekLabel(d))
		})
	}
}

func TestBuildRevenueByPeriod_ZeroFilled(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	got := BuildRevenueByPeriod(nil, start, end, time.UTC)

	require.Len(t, got.Daily, 31)
	assert.Equal(t, "2024-01-01", got.Daily[0].Date)
	assert.Equal(t, "2024-01-31", got.Daily[30].Date)
	for _, d := range got.Daily {
		assert.True(t, d.Revenue.IsZero())
	}

	// Jan 1 2024 is a Monday, Jan 31 a Wednesday
	require.Len(t, got.Weekly, 5)
	assert.Equal(t, "2024-W01", got.Weekly[0].Week)
	assert.Equal(t, "2024-W05", got.Weekly[4].Week)

	require.Len(t, got.Monthly, 1)
	assert.Equal(t, "2024-01", got.Monthly[0].Month)
}

func TestBuildRevenueByPeriod_SpansYearBoundary(t *testing.T) {
	start := time.Date(2022, 12, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	got := BuildRevenueByPeriod(nil, start, end, time.UTC)

	assert.Len(t, got.Daily, 4)
	weeks := make([]string, 0, len(got.Weekly))
	for _, w := range got.Weekly {
		weeks = append(weeks, w.Week)
	}
	assert.Equal(t, []string{"2022-W52", "2023-W01"}, weeks)
	assert.Equal(t, "2022-12", got.Monthly[0].Month)
	assert.Equal(t, "2023-01", got.Monthly[1].Month)
}

func TestBuildRevenueByPeriod_InvertedRange(t *testing.T) {
	start := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{paidOrder("o1", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), 1000)}

	got := BuildRevenueByPeriod(orders, start, end, time.UTC)

	assert.Empty(t, got.Daily)
	assert.Empty(t, got.Weekly)
	assert.Empty(t, got.Monthly)
}

func TestBuildRevenueByPeriod_InvertedWithinOneDay(t *testing.T) {
	start := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	orders := []models.Order{paidOrder("o1", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC), 1000)}

	got := BuildRevenueByPeriod(orders, start, end, time.UTC)

	assert.NotNil(t, got.Daily)
	assert.Empty(t, got.Daily)
	assert.Empty(t, got.Weekly)
	assert.Empty(t, got.Monthly)
}

func TestBuildRevenueByPeriod_CreditsMatchingBuckets(t *testing.T) {
	start := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 2, 23, 59, 59, 0, time.UTC)
	orders := []models.Order{
		paidOrder("o1", time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC), 1599),
		paidOrder("o2", time.Date(2024, 1, 31, 22, 0, 0, 0, time.UTC), 1),
		paidOrder("o3", time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC), 2500),
		// outside the window, never creates a bucket
		paidOrder("o4", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), 9999),
	}

	got := BuildRevenueByPeriod(orders, start, end, time.UTC)

	require.Len(t, got.Daily, 4)
	assertDecimal(t, "0", got.Daily[0].Revenue)
	assertDecimal(t, "16.00", got.Daily[1].Revenue)
	assertDecimal(t, "0", got.Daily[2].Revenue)
	assertDecimal(t, "25.00", got.Daily[3].Revenue)

	require.Len(t, got.Monthly, 2)
	assertDecimal(t, "16.00", got.Monthly[0].Revenue)
	assertDecimal(t, "25.00", got.Monthly[1].Revenue)

	require.Len(t, got.Weekly, 1)
	assert.Equal(t, "2024-W05", got.Weekly[0].Week)
	assertDecimal(t, "41.00", got.Weekly[0].Revenue)
}

func TestBuildRevenueByPeriod_UsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2024, 2, 28, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 1, 23, 59, 59, 0, loc)
	// 02:00 UTC on Mar 1 is still Feb 29 in New York
	orders := []models.Order{paidOrder("o1", time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC), 500)}

	got := BuildRevenueByPeriod(orders, start, end, loc)

	require.Len(t, got.Daily, 3)
	assert.Equal(t, "2024-02-29", got.Daily[1].Date)
	assertDecimal(t, "5", got.Daily[1].Revenue)
	assertDecimal(t, "5", got.Monthly[0].Revenue)
	assert.True(t, got.Monthly[1].Revenue.IsZero())
}

func TestBuildRevenueByPeriod_DaylightSavingChange(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	start := time.Date(2024, 3, 30, 0, 0, 0, 0, loc)
	end := time.Date(2024, 4, 1, 23, 0, 0, 0, loc)

	got := BuildRevenueByPeriod(nil, start, end, loc)

	require.Len(t, got.Daily, 3)
	assert.Equal(t, "2024-03-31", got.Daily[1].Date)
}

func TestBuildRevenueByPeriod_ConservesRevenue(t *testing.T) {
	fake := faker.New()
	start := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 20, 23, 59, 59, 0, time.UTC)

	for run := 0; run < 20; run++ {
		orders := randomOrders(fake, fake.IntBetween(0, 200), start, end)
		got := BuildRevenueByPeriod(orders, start, end, time.UTC)
		total := SummarizeOrders(orders).TotalRevenue

		daily, weekly, monthly := decimal.Zero, decimal.Zero, decimal.Zero
		for _, d := range got.Daily {
			daily = daily.Add(d.Revenue)
		}
		for _, w := range got.Weekly {
			weekly = weekly.Add(w.Revenue)
		}
		for _, m := range got.Monthly {
			monthly = monthly.Add(m.Revenue)
		}

		assert.True(t, total.Equal(daily), "daily %s != total %s", daily, total)
		assert.True(t, total.Equal(weekly), "weekly %s != total %s", weekly, total)
		assert.True(t, total.Equal(monthly), "monthly %s != total %s", monthly, total)
		assert.Len(t, got.Daily, 98)
	}
}
