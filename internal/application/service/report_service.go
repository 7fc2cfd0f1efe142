package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sangkips/salesreport-api/internal/domain/enum"
	"github.com/sangkips/salesreport-api/internal/domain/report"
	"github.com/sangkips/salesreport-api/internal/domain/repository"
	"github.com/sangkips/salesreport-api/pkg/apperror"
	"github.com/sangkips/salesreport-api/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

// ReportService answers sales table and chart queries
type ReportService struct {
	salesRepo       repository.SalesRepository
	strict          bool
	defaultPageSize int
}

// ReportOptions tunes ReportService behaviour
type ReportOptions struct {
	// Strict rejects unrecognised axis and measure tokens
	Strict          bool
	DefaultPageSize int
}

// NewReportService creates a new report service
func NewReportService(salesRepo repository.SalesRepository, opts ReportOptions) *ReportService {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = pagination.DefaultPageSize
	}
	return &ReportService{
		salesRepo:       salesRepo,
		strict:          opts.Strict,
		defaultPageSize: opts.DefaultPageSize,
	}
}

// ReportQuery selects one page of the sales table
type ReportQuery struct {
	Filter     report.Filter
	Pagination *pagination.PaginationParams
}

// ChartQuery selects a chart series. Axis and measure are raw tokens as
// received from the client; empty tokens mean Month and Amount.
type ChartQuery struct {
	Filter report.Filter
	XAxis  string
	YAxis  string
}

// ChartData is a series laid out for a charting component
type ChartData struct {
	Labels     []string  `json:"labels"`
	Values     []float64 `json:"values"`
	XAxisLabel string    `json:"x_axis_label"`
	YAxisLabel string    `json:"y_axis_label"`
}

// Option is a value/text pair for a selector
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// FilterOptions holds everything needed to build the filter and chart selectors
type FilterOptions struct {
	Categories   []string `json:"categories"`
	Regions      []string `json:"regions"`
	SalesPersons []string `json:"sales_persons"`
	XAxisOptions []Option `json:"x_axis_options"`
	YAxisOptions []Option `json:"y_axis_options"`
	ChartTypes   []Option `json:"chart_types"`
	PageSizes    []int    `json:"page_sizes"`
}

var chartTypes = []Option{
	{Value: "line", Text: "Line Chart"},
	{Value: "bar", Text: "Bar Chart"},
	{Value: "pie", Text: "Pie Chart"},
	{Value: "doughnut", Text: "Doughnut Chart"},
}

// GetPage returns one page of filtered sales, newest first, with totals over
// the whole filtered set
func (s *ReportService) GetPage(ctx context.Context, query *ReportQuery) (*report.Page, error) {
	params := query.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
		params.PageSize = s.defaultPageSize
	}
	if params.PageSize < 1 {
		params.PageSize = s.defaultPageSize
	}
	params.Validate()

	sales, err := s.salesRepo.FetchFiltered(ctx, &query.Filter)
	if err != nil {
		return nil, err
	}

	return report.Paginate(sales, params.Page, params.PageSize), nil
}

// GetSeries groups the filtered sales along the requested axis
func (s *ReportService) GetSeries(ctx context.Context, query *ChartQuery) (*ChartData, error) {
	xToken := defaultToken(query.XAxis, enum.AxisMonth.String())
	yToken := defaultToken(query.YAxis, enum.MeasureAmount.String())

	axis, err := s.resolveAxis(xToken)
	if err != nil {
		return nil, err
	}
	measure, err := s.resolveMeasure(yToken)
	if err != nil {
		return nil, err
	}

	sales, err := s.salesRepo.FetchFiltered(ctx, &query.Filter)
	if err != nil {
		return nil, err
	}

	return newChartData(report.Aggregate(sales, axis, measure), enum.DisplayLabel(xToken), enum.DisplayLabel(yToken)), nil
}

// GetMonthlyTrend returns the monthly sales amount for the filtered sales
func (s *ReportService) GetMonthlyTrend(ctx context.Context, filter *report.Filter) (report.Series, error) {
	sales, err := s.salesRepo.FetchFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return report.Aggregate(sales, enum.AxisMonth, enum.MeasureAmount), nil
}

// GetFilterOptions lists the selectable filter values, computed from all
// sales regardless of any active filter, together with the fixed chart
// selector options
func (s *ReportService) GetFilterOptions(ctx context.Context) (*FilterOptions, error) {
	facets := make([][]string, len(enum.Dimensions))

	g, gctx := errgroup.WithContext(ctx)
	for i, dim := range enum.Dimensions {
		g.Go(func() error {
			values, err := s.salesRepo.DistinctValues(gctx, dim)
			if err != nil {
				return err
			}
			facets[i] = report.Options(values)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := &FilterOptions{
		Categories:   facets[0],
		Regions:      facets[1],
		SalesPersons: facets[2],
		ChartTypes:   chartTypes,
		PageSizes:    pagination.PageSizes,
	}
	for _, a := range enum.Axes {
		opts.XAxisOptions = append(opts.XAxisOptions, Option{Value: a.String(), Text: a.Label()})
	}
	for _, m := range enum.Measures {
		opts.YAxisOptions = append(opts.YAxisOptions, Option{Value: m.String(), Text: m.OptionText()})
	}
	return opts, nil
}

func (s *ReportService) resolveAxis(token string) (enum.Axis, error) {
	axis, ok := enum.ParseAxis(token)
	if !ok && s.strict {
		return enum.AxisUnknown, apperror.NewInvalidArgumentError("x_axis", fmt.Sprintf("unknown axis %q", token))
	}
	return axis, nil
}

func (s *ReportService) resolveMeasure(token string) (enum.Measure, error) {
	measure, ok := enum.ParseMeasure(token)
	if !ok && s.strict {
		return enum.MeasureUnspecified, apperror.NewInvalidArgumentError("y_axis", fmt.Sprintf("unknown measure %q", token))
	}
	return measure, nil
}

func defaultToken(token, fallback string) string {
	if token = strings.TrimSpace(token); token == "" {
		return fallback
	}
	return token
}

func newChartData(series report.Series, xLabel, yLabel string) *ChartData {
	data := &ChartData{
		Labels:     series.Labels(),
		Values:     make([]float64, len(series)),
		XAxisLabel: xLabel,
		YAxisLabel: yLabel,
	}
	for i, p := range series {
		data.Values[i] = p.Value.InexactFloat64()
	}
	return data
}
