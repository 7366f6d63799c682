package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "leadassign/internal/errors"
	"leadassign/internal/middleware"
	"leadassign/internal/service"
)

type uploadResponse struct {
	Message        string                           `json:"message"`
	TotalCustomers int                              `json:"totalCustomers"`
	TotalAgents    int                              `json:"totalAgents"`
	Distribution   []service.AgentAssignmentSummary `json:"distribution"`
	DistributionID *string                          `json:"distributionId"`
	FailedAgents   []string                         `json:"failedAgents,omitempty"`
}

// UploadHTTPHandler is http handler for the customer upload endpoint
type UploadHTTPHandler struct {
	uploadSvc     service.UploadService
	maxUploadSize int64
}

// NewUploadHTTPHandler builds new UploadHTTPHandler
func NewUploadHTTPHandler(uploadSvc service.UploadService, maxUploadSize int64) *UploadHTTPHandler {
	return &UploadHTTPHandler{uploadSvc: uploadSvc, maxUploadSize: maxUploadSize}
}

// Upload ingests a customer file and distributes it across active agents
// @Summary     Upload customers
// @Description Parses the uploaded CSV/XLS/XLSX file and distributes its customers round-robin across active agents
// @Tags        upload
// @Security	ApiKeyAuth
// @Accept		mpfd
// @Produce     json
// @Param 		file formData file true "Customer file (.csv, .xls, .xlsx)"
// @Success     200    {object} uploadResponse
// @Failure     400    {object} echo.HTTPError
// @Failure     413    {object} echo.HTTPError
// @Router      /api/upload/customers [post]
func (h *UploadHTTPHandler) Upload(c echo.Context) error {
	fileHdr, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded, provide a CSV, XLS or XLSX file")
	}

	// reject oversized uploads before buffering the content
	if fileHdr.Size > h.maxUploadSize {
		return apperrors.ErrPayloadTooLarge
	}

	src, err := fileHdr.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to load file content - %v", err))
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to read file content - %v", err))
	}

	uploadedBy, _ := c.Get(middleware.AdminIDContextKey).(string)

	result, err := h.uploadSvc.Distribute(c.Request().Context(), fileHdr.Filename, content, uploadedBy)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &uploadResponse{
		Message: fmt.Sprintf("successfully uploaded and distributed %d customers among %d agents",
			result.TotalCustomers, result.TotalAgents),
		TotalCustomers: result.TotalCustomers,
		TotalAgents:    result.TotalAgents,
		Distribution:   result.Distribution,
		DistributionID: result.DistributionID,
		FailedAgents:   result.FailedAgents,
	})
}
