package request

import (
	"time"

	"github.com/sangkips/salesreport-api/internal/domain/report"
)

const dateLayout = "2006-01-02"

// ReportFilterRequest represents the sales filter parameters shared by all
// report endpoints
type ReportFilterRequest struct {
	Category    string `form:"category" json:"category"`
	Region      string `form:"region" json:"region"`
	SalesPerson string `form:"salesperson" json:"salesperson"`
	FromDate    string `form:"from_date" json:"from_date"`
	ToDate      string `form:"to_date" json:"to_date"`
}

// SalesReportRequest represents a sales table request. Zero page values
// fall back to the first page and the default size.
type SalesReportRequest struct {
	ReportFilterRequest
	Page     int `form:"page" json:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" json:"page_size" binding:"omitempty,min=1,max=100"`
}

// ChartRequest represents a chart series request
type ChartRequest struct {
	ReportFilterRequest
	XAxis string `form:"x_axis" json:"x_axis"`
	YAxis string `form:"y_axis" json:"y_axis"`
}

// ToFilter converts the request into a report filter. Dates that cannot be
// parsed are left unset. A bare to_date covers the whole day.
func (r *ReportFilterRequest) ToFilter() report.Filter {
	filter := report.Filter{
		Category:    r.Category,
		Region:      r.Region,
		SalesPerson: r.SalesPerson,
	}
	if t, ok := parseDate(r.FromDate, false); ok {
		filter.FromDate = &t
	}
	if t, ok := parseDate(r.ToDate, true); ok {
		filter.ToDate = &t
	}
	return filter
}

func parseDate(value string, endOfDay bool) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, true
}
