package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/mern-eats/sales-api/internal/middleware"
	"github.com/mern-eats/sales-api/internal/models"
	"github.com/mern-eats/sales-api/internal/services"
	"github.com/mern-eats/sales-api/pkg/logger"
)

const (
	msgNotFoundOrUnauthorized = "Restaurant not found or unauthorized"
	msgReportFailed           = "Error generating sales report"
)

type SalesReportHandler struct {
	reportSvc *services.SalesReportService
	exportSvc *services.ExportService
}

func NewSalesReportHandler(reportSvc *services.SalesReportService, exportSvc *services.ExportService) *SalesReportHandler {
	return &SalesReportHandler{
		reportSvc: reportSvc,
		exportSvc: exportSvc,
	}
}

// @Summary Get Sales Report
// @Description Sales performance report of a restaurant the caller operates
// @Tags Reports
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param startDate query string false "Start Date (ISO 8601)"
// @Param endDate query string false "End Date (ISO 8601)"
// @Param period query string false "Preferred granularity (daily, weekly, monthly)"
// @Security BearerAuth
// @Router /my/restaurant/{restaurantId}/reports/sales [get]
func (h *SalesReportHandler) Show(c *gin.Context) {
	report, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Export Sales Report
// @Description Downloads the sales report as csv, xlsx or pdf
// @Tags Reports
// @Produce application/octet-stream
// @Param restaurantId path string true "Restaurant ID"
// @Param format query string true "Report format (csv, xlsx, pdf)"
// @Param startDate query string false "Start Date (ISO 8601)"
// @Param endDate query string false "End Date (ISO 8601)"
// @Security BearerAuth
// @Router /my/restaurant/{restaurantId}/reports/sales/export [get]
func (h *SalesReportHandler) Export(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", services.ExportCSV)))
	contentType, ok := services.ExportContentType(format)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid format (csv, xlsx, pdf)"})
		return
	}

	report, ok := h.generate(c)
	if !ok {
		return
	}

	data, filename, err := h.exportSvc.Export(c.Request.Context(), report, c.Param("restaurantId"), format)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *SalesReportHandler) generate(c *gin.Context) (*models.SalesReport, bool) {
	report, err := h.reportSvc.Generate(c.Request.Context(), services.SalesReportQuery{
		RestaurantID: c.Param("restaurantId"),
		RequesterID:  middleware.GetUserID(c),
		StartDate:    c.Query("startDate"),
		EndDate:      c.Query("endDate"),
		Period:       c.Query("period"),
	})
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return report, true
}

// fail maps service errors to responses. Only unexpected failures are
// reported to Sentry.
func (h *SalesReportHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFoundOrUnauthorized):
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotFoundOrUnauthorized})
	case errors.Is(err, services.ErrMalformedInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		_ = c.Error(err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("restaurant_id", c.Param("restaurantId"))
				scope.SetTag("request_id", middleware.GetRequestID(c))
				hub.CaptureException(err)
			})
		}
		logger.FromContext(c.Request.Context()).Error("[SalesReportHandler] report failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgReportFailed})
	}
}
