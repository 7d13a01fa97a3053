package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mern-eats/sales-api/internal/models"
	"github.com/mern-eats/sales-api/internal/repository"
	"github.com/mern-eats/sales-api/pkg/logger"
)

// DefaultReportWindow is used when the caller gives no start date
const DefaultReportWindow = 30 * 24 * time.Hour

// ReportOptions configures SalesReportService
type ReportOptions struct {
	Location      *time.Location
	DefaultWindow time.Duration
	TopItems      int
	Now           func() time.Time
}

// SalesReportQuery is one report request. Dates are raw query values.
type SalesReportQuery struct {
	RestaurantID string
	RequesterID  string
	StartDate    string
	EndDate      string
	Period       string
}

type SalesReportService struct {
	restaurantRepo repository.RestaurantRepository
	orderRepo      repository.OrderRepository
	opts           ReportOptions
}

func NewSalesReportService(restaurantRepo repository.RestaurantRepository, orderRepo repository.OrderRepository, opts ReportOptions) *SalesReportService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DefaultWindow <= 0 {
		opts.DefaultWindow = DefaultReportWindow
	}
	if opts.TopItems <= 0 {
		opts.TopItems = DefaultTopItems
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SalesReportService{
		restaurantRepo: restaurantRepo,
		orderRepo:      orderRepo,
		opts:           opts,
	}
}

// Location returns the zone calendar fields are read in
func (s *SalesReportService) Location() *time.Location {
	return s.opts.Location
}

// Generate checks that the requester operates the restaurant, resolves the
// date range, fetches paid orders and assembles the report.
func (s *SalesReportService) Generate(ctx context.Context, q SalesReportQuery) (*models.SalesReport, error) {
	log := logger.FromContext(ctx)

	restaurant, err := s.restaurantRepo.FindOwned(ctx, strings.TrimSpace(q.RestaurantID), strings.TrimSpace(q.RequesterID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		log.Error("[SalesReportService] restaurant lookup failed", "restaurant_id", q.RestaurantID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	rng, err := ResolveDateRange(q.StartDate, q.EndDate, s.opts.Now(), s.opts.DefaultWindow, s.opts.Location)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindPaid(ctx, restaurant.ID, rng.Start, rng.End)
	if err != nil {
		log.Error("[SalesReportService] order fetch failed", "restaurant_id", restaurant.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	report := AssembleSalesReport(orders, rng, AssembleOptions{
		Location: s.opts.Location,
		TopItems: s.opts.TopItems,
		Period:   strings.TrimSpace(q.Period),
	})

	log.Debug("[SalesReportService] report generated",
		"restaurant_id", restaurant.ID,
		"orders", len(orders),
		"start", rng.Start,
		"end", rng.End,
	)
	return report, nil
}
