package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/platform-dashboard/internal/analytics"
	"github.com/tbourn/platform-dashboard/internal/http/middleware"
	"github.com/tbourn/platform-dashboard/internal/utils"
)

// FeatureMatrixResponse is the platform × feature availability grid.
type FeatureMatrixResponse struct {
	analytics.FeatureMatrix
	Message string `json:"message,omitempty"`
}

// BarChartResponse is one metric plotted per platform.
type BarChartResponse struct {
	analytics.Series
	Message string `json:"message,omitempty"`
}

// ScatterChartResponse plots speed against accuracy, sized by maintenance.
type ScatterChartResponse struct {
	Points  []analytics.ScatterPoint `json:"points"`
	Message string                   `json:"message,omitempty"`
}

// CostResponse carries per-platform estimates and the platforms left out
// because their price has no dollar amount. Formatted mirrors Lines with
// the amounts rendered as "$1,080.00".
type CostResponse struct {
	analytics.CostReport
	Formatted []analytics.CostDisplay `json:"formatted"`
	Message   string                  `json:"message,omitempty"`
}

// FeatureMatrix godoc
// @ID          featureMatrix
// @Summary     Feature matrix
// @Description Rows are the filtered platforms, columns the union of their features in first-seen order.
// @Tags        Dashboard
// @Produce     json
//
// @Param       os               query  []string  false  "Operating systems"  collectionFormat(multi)
// @Param       min_speed        query  number    false  "Minimum speed score"
// @Param       min_accuracy     query  number    false  "Minimum accuracy score"
// @Param       min_maintenance  query  number    false  "Minimum maintenance score"
//
// @Success     200  {object}  handlers.FeatureMatrixResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /features [get]
func (h *Handlers) FeatureMatrix(c *gin.Context) {
	crit, okCrit := criteriaOrFail(c)
	if !okCrit {
		return
	}
	m, err := h.dash.FeatureMatrix(c.Request.Context(), crit)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	resp := FeatureMatrixResponse{FeatureMatrix: m}
	if m.Empty() {
		resp.Message = msgNoPlatforms
		middleware.ObserveEmptyResult("features")
	}
	ok(c, http.StatusOK, resp)
}

// ExportFeatureMatrixCSV godoc
// @ID          exportFeatureMatrixCSV
// @Summary     Feature matrix as CSV
// @Tags        Export
// @Produce     text/csv
// @Param       os               query  []string  false  "Operating systems"  collectionFormat(multi)
// @Param       min_speed        query  number    false  "Minimum speed score"
// @Param       min_accuracy     query  number    false  "Minimum accuracy score"
// @Param       min_maintenance  query  number    false  "Minimum maintenance score"
// @Success     200  {file}    file
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /features/export.csv [get]
func (h *Handlers) ExportFeatureMatrixCSV(c *gin.Context) {
	crit, okCrit := criteriaOrFail(c)
	if !okCrit {
		return
	}
	m, err := h.dash.FeatureMatrix(c.Request.Context(), crit)
	if err != nil {
		failService(c, err, ErrCodeExportFailed)
		return
	}
	csvAttachment(c, "feature_matrix.csv", func(w io.Writer) error {
		return analytics.ExportFeatureMatrixCSV(w, m)
	})
}

// BarChart godoc
// @ID          barChart
// @Summary     Metric bar chart
// @Tags        Charts
// @Produce     json
//
// @Param       metric           query  string    false  "speed, accuracy or maintenance"  default(speed)
// @Param       os               query  []string  false  "Operating systems"  collectionFormat(multi)
// @Param       min_speed        query  number    false  "Minimum speed score"
// @Param       min_accuracy     query  number    false  "Minimum accuracy score"
// @Param       min_maintenance  query  number    false  "Minimum maintenance score"
//
// @Success     200  {object}  handlers.BarChartResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /charts/bar [get]
func (h *Handlers) BarChart(c *gin.Context) {
	crit, okCrit := criteriaOrFail(c)
	if !okCrit {
		return
	}
	m, err := analytics.ParseMetric(c.DefaultQuery("metric", string(analytics.MetricSpeed)))
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	s, err := h.dash.Bar(c.Request.Context(), crit, m)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	resp := BarChartResponse{Series: s}
	if len(s.Points) == 0 {
		resp.Message = msgNoPlatforms
		middleware.ObserveEmptyResult("bar")
	}
	ok(c, http.StatusOK, resp)
}

// ScatterChart godoc
// @ID          scatterChart
// @Summary     Speed vs accuracy scatter
// @Tags        Charts
// @Produce     json
// @Param       os               query  []string  false  "Operating systems"  collectionFormat(multi)
// @Param       min_speed        query  number    false  "Minimum speed score"
// @Param       min_accuracy     query  number    false  "Minimum accuracy score"
// @Param       min_maintenance  query  number    false  "Minimum maintenance score"
// @Success     200  {object}  handlers.ScatterChartResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /charts/scatter [get]
func (h *Handlers) ScatterChart(c *gin.Context) {
	crit, okCrit := criteriaOrFail(c)
	if !okCrit {
		return
	}
	pts, err := h.dash.Scatter(c.Request.Context(), crit)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return
	}
	resp := ScatterChartResponse{Points: pts}
	if len(pts) == 0 {
		resp.Message = msgNoPlatforms
		middleware.ObserveEmptyResult("scatter")
	}
	ok(c, http.StatusOK, resp)
}

// parseCostInput reads users, storage_gb, features and period, defaulting to
// 5 users, 10 GB, 2 features and monthly.
func parseCostInput(c *gin.Context) (analytics.CostInput, error) {
	users, err := utils.ParseIntParam(c.Query("users"), 5)
	if err != nil {
		return analytics.CostInput{}, err
	}
	storage, err := utils.ParseIntParam(c.Query("storage_gb"), 10)
	if err != nil {
		return analytics.CostInput{}, err
	}
	features, err := utils.ParseIntParam(c.Query("features"), 2)
	if err != nil {
		return analytics.CostInput{}, err
	}
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		return analytics.CostInput{}, err
	}
	in := analytics.CostInput{Users: users, StorageGB: storage, Features: features, Period: period}
	return in, in.Validate()
}

func (h *Handlers) costReport(c *gin.Context) (analytics.CostReport, bool) {
	crit, okCrit := criteriaOrFail(c)
	if !okCrit {
		return analytics.CostReport{}, false
	}
	in, err := parseCostInput(c)
	if err != nil {
		if errors.Is(err, utils.ErrBadNumber) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "users, storage_gb and features must be integers")
			return analytics.CostReport{}, false
		}
		failService(c, err, ErrCodeListFailed)
		return analytics.CostReport{}, false
	}
	rep, err := h.dash.Costs(c.Request.Context(), crit, in)
	if err != nil {
		failService(c, err, ErrCodeListFailed)
		return analytics.CostReport{}, false
	}
	return rep, true
}

// CostEstimate godoc
// @ID          costEstimate
// @Summary     Cost calculator
// @Description monthly = base + users×10 + storage_gb×0.5 + features×5; annual = monthly×12; savings = annual×0.10.
// @Description Platforms whose price has no dollar amount are listed under `excluded`.
// @Tags        Dashboard
// @Produce     json
//
// @Param       users            query  int       false  "Users"               minimum(1) default(5)
// @Param       storage_gb       query  int       false  "Storage in GB"       minimum(1) default(10)
// @Param       features         query  int       false  "Additional features" minimum(0) default(2)
// @Param       period           query  string    false  "Monthly or Annually" default(Monthly)
// @Param       os               query  []string  false  "Operating systems"   collectionFormat(multi)
// @Param       min_speed        query  number    false  "Minimum speed score"
// @Param       min_accuracy     query  number    false  "Minimum accuracy score"
// @Param       min_maintenance  query  number    false  "Minimum maintenance score"
//
// @Success     200  {object}  handlers.CostResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /cost [get]
func (h *Handlers) CostEstimate(c *gin.Context) {
	rep, found := h.costReport(c)
	if !found {
		return
	}
	resp := CostResponse{CostReport: rep, Formatted: make([]analytics.CostDisplay, 0, len(rep.Lines))}
	for _, l := range rep.Lines {
		resp.Formatted = append(resp.Formatted, l.Display())
	}
	if len(rep.Lines) == 0 {
		resp.Message = msgNoPriced
		middleware.ObserveEmptyResult("cost")
	}
	ok(c, http.StatusOK, resp)
}

// ExportCostCSV godoc
// @ID          exportCostCSV
// @Summary     Cost estimates as CSV
// @Tags        Export
// @Produce     text/csv
// @Param       users       query  int     false  "Users"               default(5)
// @Param       storage_gb  query  int     false  "Storage in GB"       default(10)
// @Param       features    query  int     false  "Additional features" default(2)
// @Param       period      query  string  false  "Monthly or Annually" default(Monthly)
// @Success     200  {file}    file
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Router      /cost/export.csv [get]
func (h *Handlers) ExportCostCSV(c *gin.Context) {
	rep, found := h.costReport(c)
	if !found {
		return
	}
	csvAttachment(c, "cost_estimates.csv", func(w io.Writer) error {
		return analytics.ExportCostCSV(w, rep)
	})
}
