package controller

import (
	"codetrack_backend/internal/service"
	"codetrack_backend/internal/util"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
	InsightsService  *service.InsightsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, insightsService *service.InsightsService) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsService: analyticsService,
		InsightsService:  insightsService,
	}
}

// parseWindow reads the optional timeframe name and explicit date pair from
// the query. The explicit pair wins when both are present.
func parseWindow(ctx *gin.Context) (string, *time.Time, *time.Time, bool) {
	timeframe := ctx.DefaultQuery("timeframe", service.TimeframeMonth)

	var start, end *time.Time
	if raw := ctx.Query("startDate"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			util.BadRequest(ctx, "Invalid startDate, expected YYYY-MM-DD")
			return "", nil, nil, false
		}
		start = &t
	}
	if raw := ctx.Query("endDate"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			util.BadRequest(ctx, "Invalid endDate, expected YYYY-MM-DD")
			return "", nil, nil, false
		}
		// include the whole end day
		t = t.AddDate(0, 0, 1).Add(-time.Second)
		end = &t
	}

	return timeframe, start, end, true
}

// @Summary Get the analytics report
// @Description Summary statistics over the user's problems, learning items and roadmaps within the window
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param timeframe query string false "named window" enums(week,month,quarter) default(month)
// @Param startDate query string false "explicit window start (YYYY-MM-DD), takes precedence with endDate"
// @Param endDate query string false "explicit window end (YYYY-MM-DD)"
// @Success 200 {object} util.Response
// @Router /api/analytics/report [get]
func (c *AnalyticsController) GetReport(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	timeframe, start, end, ok := parseWindow(ctx)
	if !ok {
		return
	}

	report, err := c.AnalyticsService.GetReport(ctx.Request.Context(), user.UserID, timeframe, start, end)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidDateRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, report)
}

// @Summary List revision items due within the window
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param timeframe query string false "named window" enums(week,month,quarter) default(month)
// @Param startDate query string false "explicit window start (YYYY-MM-DD)"
// @Param endDate query string false "explicit window end (YYYY-MM-DD)"
// @Success 200 {object} util.Response
// @Router /api/analytics/revisions [get]
func (c *AnalyticsController) GetRevisionWindow(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	timeframe, start, end, ok := parseWindow(ctx)
	if !ok {
		return
	}

	items, err := c.AnalyticsService.GetRevisionWindow(user.UserID, timeframe, start, end)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidDateRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, items)
}

// @Summary Get static insight content
// @Description Canned productivity patterns and recommendations; not computed from user data
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/analytics/insights [get]
func (c *AnalyticsController) GetInsights(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, c.InsightsService.GetInsights())
}
