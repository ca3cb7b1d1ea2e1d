package v1

import (
	"errors"
	"fmt"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

func NewAdminHandler(admin *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &AdminHandler{
		analyticsUC: analyticsUC,
	}

	admin.GET("/stats", handler.GetStats)
	admin.GET("/stats/export", handler.ExportStats)
}

// GetStats godoc
// @Summary      Visit statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.VisitStats}
// @Failure      401  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.analyticsUC.GetStats(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrAnalyticsDisabled) {
			_ = c.Error(apperror.Unavailable("Analytics is not configured", err))
			return
		}
		_ = c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Stats retrieved", stats)
}

// ExportStats godoc
// @Summary      Export visit statistics
// @Description  Downloads the stats as an Excel workbook (Summary and Top Paths sheets) or CSV
// @Tags         admin
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        format  query  string  false  "Export format (xlsx, csv). Default: xlsx"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /admin/stats/export [get]
func (h *AdminHandler) ExportStats(c *gin.Context) {
	format := c.DefaultQuery("format", usecase.ExportXLSX)

	data, filename, err := h.analyticsUC.ExportStats(c.Request.Context(), format)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAnalyticsDisabled):
			_ = c.Error(apperror.Unavailable("Analytics is not configured", err))
		case errors.Is(err, usecase.ErrUnsupportedFormat):
			_ = c.Error(apperror.BadRequest(err.Error()))
		default:
			_ = c.Error(apperror.Internal(err))
		}
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == usecase.ExportCSV {
		contentType = "text/csv; charset=utf-8"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
