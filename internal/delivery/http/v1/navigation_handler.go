package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NavigationHandler struct {
	navigationUC domain.NavigationUsecase
}

func NewNavigationHandler(public *gin.RouterGroup, navigationUC domain.NavigationUsecase) {
	handler := &NavigationHandler{
		navigationUC: navigationUC,
	}

	public.GET("/navigation/section", handler.ResolveSection)
	public.POST("/navigation/visible", handler.VisibleSection)
}

// ResolveSection godoc
// @Summary      Active section for a location
// @Description  Resolves the highlighted navigation item for a path and hash fragment
// @Tags         navigation
// @Produce      json
// @Param        path  query     string  false  "URL path"  default(/)
// @Param        hash  query     string  false  "URL hash, with or without #"
// @Success      200   {object}  response.Response{data=domain.SectionState}
// @Router       /navigation/section [get]
func (h *NavigationHandler) ResolveSection(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	state := h.navigationUC.Resolve(c.Request.Context(), path, c.Query("hash"))
	response.Success(c, http.StatusOK, "Section resolved", state)
}

// VisibleSection godoc
// @Summary      Active section for observed visibility
// @Description  Picks the most visible section above the threshold; ties keep the current section
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        report  body      domain.VisibilityReport  true  "Visible fraction per section"
// @Success      200     {object}  response.Response{data=domain.SectionState}
// @Failure      400     {object}  response.Response
// @Router       /navigation/visible [post]
func (h *NavigationHandler) VisibleSection(c *gin.Context) {
	var report domain.VisibilityReport
	if err := c.ShouldBindJSON(&report); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid visibility report"))
		return
	}
	state := h.navigationUC.Visible(c.Request.Context(), report)
	response.Success(c, http.StatusOK, "Section resolved", state)
}
