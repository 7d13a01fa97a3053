package services

import (
	"time"

	"github.com/mern-eats/sales-api/internal/models"
	"github.com/shopspring/decimal"
)

// EmptyPeakTimes returns the 24 hourly and 7 daily buckets, all zero
func EmptyPeakTimes() models.PeakTimes {
	pt := models.PeakTimes{
		ByHour: make([]models.HourDistribution, 24),
		ByDay:  make([]models.DayDistribution, 7),
	}
	for h := range pt.ByHour {
		pt.ByHour[h] = models.HourDistribution{Hour: h, Revenue: decimal.Zero}
	}
	for d := range pt.ByDay {
		pt.ByDay[d] = models.DayDistribution{Day: time.Weekday(d).String(), Revenue: decimal.Zero}
	}
	return pt
}

// BuildPeakTimes counts orders and revenue per hour of day and per day of
// week, both read in loc. The two views are independent.
func BuildPeakTimes(orders []models.Order, loc *time.Location) models.PeakTimes {
	if loc == nil {
		loc = time.UTC
	}

	pt := EmptyPeakTimes()
	for i := range orders {
		at := orders[i].CreatedAt.In(loc)
		amount := orders[i].Amount()

		hour := &pt.ByHour[at.Hour()]
		hour.Count++
		hour.Revenue = hour.Revenue.Add(amount)

		day := &pt.ByDay[int(at.Weekday())]
		day.Count++
		day.Revenue = day.Revenue.Add(amount)
	}
	return pt
}
