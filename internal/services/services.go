package services

import (
	"github.com/mern-eats/sales-api/internal/config"
	"github.com/mern-eats/sales-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	SalesReport *SalesReportService
	Export      *ExportService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		SalesReport: NewSalesReportService(repos.Restaurant, repos.Order, ReportOptions{
			Location:      cfg.ReportLocation,
			DefaultWindow: cfg.ReportDefaultWindow,
			TopItems:      cfg.ReportTopItems,
		}),
		Export: NewExportService(),
	}
}
