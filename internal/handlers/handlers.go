package handlers

import (
	"github.com/mern-eats/sales-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	SalesReport *SalesReportHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		SalesReport: NewSalesReportHandler(svcs.SalesReport, svcs.Export),
	}
}
