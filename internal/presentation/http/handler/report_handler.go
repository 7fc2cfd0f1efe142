package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salesreport-api/internal/application/service"
	"github.com/sangkips/salesreport-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salesreport-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salesreport-api/pkg/pagination"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListSales handles the paginated sales table
func (h *ReportHandler) ListSales(c *gin.Context) {
	var req request.SalesReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.reportService.GetPage(c.Request.Context(), &service.ReportQuery{
		Filter: req.ToFilter(),
		Pagination: &pagination.PaginationParams{
			Page:     req.Page,
			PageSize: req.PageSize,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report retrieved successfully", page)
}

// GetChart handles chart series requests. Parameters come from the query
// string on GET and from a JSON or form body on POST.
func (h *ReportHandler) GetChart(c *gin.Context) {
	var req request.ChartRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid chart parameters")
		return
	}

	data, err := h.reportService.GetSeries(c.Request.Context(), &service.ChartQuery{
		Filter: req.ToFilter(),
		XAxis:  req.XAxis,
		YAxis:  req.YAxis,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Chart data retrieved successfully", data)
}

// GetTrend handles the monthly sales amount trend
func (h *ReportHandler) GetTrend(c *gin.Context) {
	var req request.ReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := req.ToFilter()
	series, err := h.reportService.GetMonthlyTrend(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales trend retrieved successfully", series)
}

// GetOptions handles the filter and chart selector options
func (h *ReportHandler) GetOptions(c *gin.Context) {
	opts, err := h.reportService.GetFilterOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report options retrieved successfully", opts)
}
