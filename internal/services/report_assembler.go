package services

import (
	"sync"
	"time"

	"github.com/mern-eats/sales-api/internal/models"
	"github.com/shopspring/decimal"
)

// AssembleOptions controls how a report is built from fetched orders
type AssembleOptions struct {
	Location *time.Location
	TopItems int
	Period   string
}

// SummarizeOrders totals the orders. The average is zero for no orders.
func SummarizeOrders(orders []models.Order) models.SalesSummary {
	total := decimal.Zero
	for i := range orders {
		total = total.Add(orders[i].Amount())
	}

	avg := decimal.Zero
	if len(orders) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(orders))))
	}

	return models.SalesSummary{
		TotalOrders:       len(orders),
		TotalRevenue:      total,
		AverageOrderValue: avg,
	}
}

// AssembleSalesReport builds the full report for rng. The period series,
// popular items and peak times are computed concurrently over the same
// slice, which none of them modify.
func AssembleSalesReport(orders []models.Order, rng DateRange, opts AssembleOptions) *models.SalesReport {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	report := &models.SalesReport{
		Summary: SummarizeOrders(orders),
		Range: models.ReportRange{
			StartDate: rng.Start.In(loc),
			EndDate:   rng.End.In(loc),
			Timezone:  loc.String(),
			Period:    opts.Period,
		},
	}

	if len(orders) == 0 {
		report.RevenueByPeriod = BuildRevenueByPeriod(nil, rng.Start, rng.End, loc)
		report.PopularItems = []models.PopularItem{}
		report.PeakTimes = EmptyPeakTimes()
		return report
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		report.RevenueByPeriod = BuildRevenueByPeriod(orders, rng.Start, rng.End, loc)
	}()
	go func() {
		defer wg.Done()
		report.PopularItems = BuildPopularItems(orders, opts.TopItems)
	}()
	go func() {
		defer wg.Done()
		report.PeakTimes = BuildPeakTimes(orders, loc)
	}()
	wg.Wait()

	return report
}
