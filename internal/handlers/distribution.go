package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"leadassign/internal/repository"
	"leadassign/internal/service"
)

type listDistributions struct {
	Filename  string `query:"filename"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	AgentID   string `query:"agentId" validate:"omitempty,uuid"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// DistributionHTTPHandler is http handler for the distribution history
// endpoint. Both operations are read-only.
type DistributionHTTPHandler struct {
	distributionSvc service.DistributionService
}

// NewDistributionHTTPHandler builds new DistributionHTTPHandler
func NewDistributionHTTPHandler(distributionSvc service.DistributionService) *DistributionHTTPHandler {
	return &DistributionHTTPHandler{distributionSvc: distributionSvc}
}

// List lists past distribution events
// @Summary     Distribution history
// @Description Returns filtered, paginated history of past distribution events, newest first
// @Tags        distributions
// @Security	ApiKeyAuth
// @Produce     json
// @Param       filename  query    string false "Filename substring, case-insensitive"
// @Param       startDate query    string false "Inclusive lower bound (RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query    string false "Inclusive upper bound (RFC3339 or YYYY-MM-DD)"
// @Param       agentId   query    string false "Only events assigning to this agent" Format(uuid)
// @Param       page      query    int    false "Page number, starts at 1"
// @Param       pageSize  query    int    false "Page size, capped at 100"
// @Success     200       {object} service.DistributionPage
// @Failure     400       {object} echo.HTTPError
// @Router      /api/distributions [get]
func (h *DistributionHTTPHandler) List(c echo.Context) error {
	var q listDistributions
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return err
	}

	filter := repository.DistributionFilter{
		Filename: q.Filename,
		AgentID:  q.AgentID,
	}

	from, err := parseDate(q.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid startDate - %v", err))
	}
	filter.From = from

	to, err := parseDate(q.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid endDate - %v", err))
	}
	filter.To = to

	page, err := h.distributionSvc.List(c.Request().Context(), filter, q.Page, q.PageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get returns full detail of one distribution event
// @Summary     Distribution detail
// @Description Returns one distribution event with every agent identifier resolved
// @Tags        distributions
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Distribution guid" Format(uuid)
// @Success     200    {object} service.DistributionView
// @Failure     404    {object} echo.HTTPError
// @Router      /api/distributions/{id} [get]
func (h *DistributionHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	view, err := h.distributionSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// parseDate accepts RFC3339 timestamps and plain dates. Bounds are
// inclusive, an empty value means the bound is not set.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
