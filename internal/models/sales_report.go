package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Report money is emitted as JSON numbers, matching the web client
	decimal.MarshalJSONWithoutQuotes = true
}

// SalesReport is the sales performance report for one restaurant and date
// range. It is rebuilt from raw orders on every request.
type SalesReport struct {
	Summary         SalesSummary    `json:"summary"`
	RevenueByPeriod RevenueByPeriod `json:"revenueByPeriod"`
	PopularItems    []PopularItem   `json:"popularItems"`
	PeakTimes       PeakTimes       `json:"peakTimes"`
	Range           ReportRange     `json:"range"`
}

// SalesSummary holds the top-level totals
type SalesSummary struct {
	TotalOrders       int             `json:"totalOrders"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// RevenueByPeriod holds the three zero-filled revenue series
type RevenueByPeriod struct {
	Daily   []DailyRevenue   `json:"daily"`
	Weekly  []WeeklyRevenue  `json:"weekly"`
	Monthly []MonthlyRevenue `json:"monthly"`
}

// DailyRevenue is keyed by calendar date (YYYY-MM-DD)
type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// WeeklyRevenue is keyed by ISO year-week (YYYY-Www)
type WeeklyRevenue struct {
	Week    string          `json:"week"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MonthlyRevenue is keyed by year-month (YYYY-MM)
type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// PopularItem is one ranked menu item
type PopularItem struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Count      int64           `json:"count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// PeakTimes holds order volume by hour of day and by day of week
type PeakTimes struct {
	ByHour []HourDistribution `json:"byHour"`
	ByDay  []DayDistribution  `json:"byDay"`
}

// HourDistribution is the order volume for one hour of the day (0-23)
type HourDistribution struct {
	Hour    int             `json:"hour"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DayDistribution is the order volume for one weekday (Sunday first)
type DayDistribution struct {
	Day     string          `json:"day"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ReportRange echoes the effective window the report was computed for
type ReportRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Timezone  string    `json:"timezone"`
	Period    string    `json:"period,omitempty"`
}
