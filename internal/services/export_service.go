package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/mern-eats/sales-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"
	ExportPDF  = "pdf"
)

var exportContentTypes = map[string]string{
	ExportCSV:  "text/csv",
	ExportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	ExportPDF:  "application/pdf",
}

// ExportContentType returns the MIME type of a supported export format
func ExportContentType(format string) (string, bool) {
	ct, ok := exportContentTypes[format]
	return ct, ok
}

// ExportService renders sales reports as downloadable files
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// Export renders report in format and returns the file body and a
// suggested filename.
func (s *ExportService) Export(ctx context.Context, report *models.SalesReport, restaurantID, format string) ([]byte, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	var (
		body []byte
		err  error
	)
	switch format {
	case ExportCSV:
		body, err = s.ExportCSV(ctx, report)
	case ExportXLSX:
		body, err = s.ExportXLSX(ctx, report)
	case ExportPDF:
		body, err = s.ExportPDF(ctx, report)
	default:
		return nil, "", fmt.Errorf("%w: unsupported export format %q", ErrMalformedInput, format)
	}
	if err != nil {
		return nil, "", err
	}
	return body, exportFilename(report, restaurantID, format), nil
}

func exportFilename(report *models.SalesReport, restaurantID, format string) string {
	name := "sales_report"
	if restaurantID != "" {
		name += "_" + restaurantID
	}
	return fmt.Sprintf("%s_%s_%s.%s", name,
		report.Range.StartDate.Format("20060102"),
		report.Range.EndDate.Format("20060102"),
		format)
}

// reportSection is a titled table shared by all export formats
type reportSection struct {
	title  string
	header []string
	rows   [][]string
}

func reportSections(report *models.SalesReport) []reportSection {
	summary := reportSection{
		title:  "Summary",
		header: []string{"Metric", "Value"},
		rows: [][]string{
			{"Total orders", strconv.Itoa(report.Summary.TotalOrders)},
			{"Total revenue", report.Summary.TotalRevenue.StringFixed(2)},
			{"Average order value", report.Summary.AverageOrderValue.StringFixed(2)},
		},
	}

	daily := reportSection{title: "Daily revenue", header: []string{"Date", "Revenue"}}
	for _, d := range report.RevenueByPeriod.Daily {
		daily.rows = append(daily.rows, []string{d.Date, d.Revenue.StringFixed(2)})
	}
	weekly := reportSection{title: "Weekly revenue", header: []string{"Week", "Revenue"}}
	for _, w := range report.RevenueByPeriod.Weekly {
		weekly.rows = append(weekly.rows, []string{w.Week, w.Revenue.StringFixed(2)})
	}
	monthly := reportSection{title: "Monthly revenue", header: []string{"Month", "Revenue"}}
	for _, m := range report.RevenueByPeriod.Monthly {
		monthly.rows = append(monthly.rows, []string{m.Month, m.Revenue.StringFixed(2)})
	}

	items := reportSection{title: "Popular items", header: []string{"Menu item", "Name", "Quantity", "Revenue"}}
	for _, it := range report.PopularItems {
		items.rows = append(items.rows, []string{it.MenuItemID, it.Name, strconv.FormatInt(it.Count, 10), it.Revenue.StringFixed(2)})
	}

	hours := reportSection{title: "Orders by hour", header: []string{"Hour", "Orders", "Revenue"}}
	for _, h := range report.PeakTimes.ByHour {
		hours.rows = append(hours.rows, []string{fmt.Sprintf("%02d:00", h.Hour), strconv.Itoa(h.Count), h.Revenue.StringFixed(2)})
	}
	days := reportSection{title: "Orders by day", header: []string{"Day", "Orders", "Revenue"}}
	for _, d := range report.PeakTimes.ByDay {
		days.rows = append(days.rows, []string{d.Day, strconv.Itoa(d.Count), d.Revenue.StringFixed(2)})
	}

	return []reportSection{summary, daily, weekly, monthly, items, hours, days}
}

func reportTitle(report *models.SalesReport) string {
	return fmt.Sprintf("Sales report %s - %s (%s)",
		report.Range.StartDate.Format("2006-01-02"),
		report.Range.EndDate.Format("2006-01-02"),
		report.Range.Timezone)
}

func (s *ExportService) ExportCSV(ctx context.Context, report *models.SalesReport) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeReportCSV(buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeReportCSV(w io.Writer, report *models.SalesReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{reportTitle(report)}); err != nil {
		return err
	}
	for _, section := range reportSections(report) {
		records := make([][]string, 0, len(section.rows)+3)
		records = append(records, []string{""}, []string{section.title}, section.header)
		records = append(records, section.rows...)
		for _, record := range records {
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func (s *ExportService) ExportXLSX(ctx context.Context, report *models.SalesReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})

	for i, section := range reportSections(report) {
		sheet := section.title
		if i == 0 {
			_ = f.SetSheetName("Sheet1", sheet)
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		_ = f.SetCellValue(sheet, "A1", reportTitle(report))
		_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)

		for col, h := range section.header {
			cell, _ := excelize.CoordinatesToCellName(col+1, 3)
			_ = f.SetCellValue(sheet, cell, h)
			_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
		for r, row := range section.rows {
			for col, v := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+4)
				_ = f.SetCellValue(sheet, cell, xlsxValue(v))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// xlsxValue stores numeric text as numbers so spreadsheets can sum them
func xlsxValue(v string) any {
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

func (s *ExportService) ExportPDF(ctx context.Context, report *models.SalesReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(reportTitle(report)))
	pdf.Ln(12)

	for _, section := range reportSections(report) {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, section.title)
		pdf.Ln(8)

		width := 180.0 / float64(len(section.header))
		pdf.SetFont("Arial", "B", 9)
		for _, h := range section.header {
			pdf.CellFormat(width, 6, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range section.rows {
			for _, v := range row {
				pdf.CellFormat(width, 6, tr(v), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
