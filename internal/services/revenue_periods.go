package services

import (
	"fmt"
	"time"

	"github.com/mern-eats/sales-api/internal/models"
	"github.com/shopspring/decimal"
)

// ISOWeekLabel returns the ISO 8601 week label of t, e.g. "2022-W52".
// The year is the ISO week-numbering year, which differs from the
// calendar year for some days around New Year.
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// bucketSeries is an insertion ordered key → revenue accumulator
type bucketSeries struct {
	keys    []string
	revenue map[string]decimal.Decimal
}

func newBucketSeries() *bucketSeries {
	return &bucketSeries{revenue: make(map[string]decimal.Decimal)}
}

func (s *bucketSeries) ensure(key string) {
	if _, ok := s.revenue[key]; ok {
		return
	}
	s.keys = append(s.keys, key)
	s.revenue[key] = decimal.Zero
}

// add credits amount to an existing bucket; unknown keys are ignored
func (s *bucketSeries) add(key string, amount decimal.Decimal) {
	if current, ok := s.revenue[key]; ok {
		s.revenue[key] = current.Add(amount)
	}
}

// BuildRevenueByPeriod produces the daily, weekly and monthly revenue
// series for [start, end]. Every calendar day of the window gets a bucket
// even without orders, and no bucket outside the window is ever created.
// Calendar fields are read in loc.
func BuildRevenueByPeriod(orders []models.Order, start, end time.Time, loc *time.Location) models.RevenueByPeriod {
	if loc == nil {
		loc = time.UTC
	}

	daily := newBucketSeries()
	weekly := newBucketSeries()
	monthly := newBucketSeries()

	if (DateRange{Start: start, End: end}).Inverted() {
		return periodsOf(daily, weekly, monthly)
	}

	first := startOfDay(start.In(loc))
	last := startOfDay(end.In(loc))
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		daily.ensure(dayKey(d))
		weekly.ensure(ISOWeekLabel(d))
		monthly.ensure(monthKey(d))
	}

	for i := range orders {
		order := &orders[i]
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}
		at := order.CreatedAt.In(loc)
		amount := order.Amount()
		daily.add(dayKey(at), amount)
		weekly.add(ISOWeekLabel(at), amount)
		monthly.add(monthKey(at), amount)
	}

	return periodsOf(daily, weekly, monthly)
}

// periodsOf converts the accumulated series. Empty series come out as
// empty slices, never nil.
func periodsOf(daily, weekly, monthly *bucketSeries) models.RevenueByPeriod {
	out := models.RevenueByPeriod{
		Daily:   make([]models.DailyRevenue, 0, len(daily.keys)),
		Weekly:  make([]models.WeeklyRevenue, 0, len(weekly.keys)),
		Monthly: make([]models.MonthlyRevenue, 0, len(monthly.keys)),
	}
	for _, k := range daily.keys {
		out.Daily = append(out.Daily, models.DailyRevenue{Date: k, Revenue: daily.revenue[k]})
	}
	for _, k := range weekly.keys {
		out.Weekly = append(out.Weekly, models.WeeklyRevenue{Week: k, Revenue: weekly.revenue[k]})
	}
	for _, k := range monthly.keys {
		out.Monthly = append(out.Monthly, models.MonthlyRevenue{Month: k, Revenue: monthly.revenue[k]})
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
