package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

func NewContentHandler(public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{
		contentUC: contentUC,
	}

	public.GET("/content", handler.GetPortfolio)
	public.GET("/content/:section", handler.GetSection)
	public.GET("/resume", handler.GetResume)
	public.GET("/seo/jsonld", handler.GetStructuredData)
}

// GetPortfolio godoc
// @Summary      Portfolio content
// @Description  Profile, experience, skills, education, certifications and resume metadata
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Portfolio}
// @Router       /content [get]
func (h *ContentHandler) GetPortfolio(c *gin.Context) {
	response.Success(c, http.StatusOK, "Portfolio retrieved", h.contentUC.GetPortfolio(c.Request.Context()))
}

// GetSection godoc
// @Summary      One content section
// @Tags         content
// @Produce      json
// @Param        section  path      string  true  "profile, experience, skills, education, certifications or resume"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /content/{section} [get]
func (h *ContentHandler) GetSection(c *gin.Context) {
	data, err := h.contentUC.GetSection(c.Request.Context(), c.Param("section"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Section retrieved", data)
}

// GetResume godoc
// @Summary      Resume metadata
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Router       /resume [get]
func (h *ContentHandler) GetResume(c *gin.Context) {
	response.Success(c, http.StatusOK, "Resume retrieved", h.contentUC.GetPortfolio(c.Request.Context()).Resume)
}

// GetStructuredData godoc
// @Summary      schema.org JSON-LD
// @Description  Person and WebSite documents, ready to embed in <script type="application/ld+json">
// @Tags         seo
// @Produce      json
// @Success      200  {array}  object
// @Router       /seo/jsonld [get]
func (h *ContentHandler) GetStructuredData(c *gin.Context) {
	c.Header("Content-Type", "application/ld+json; charset=utf-8")
	c.JSON(http.StatusOK, h.contentUC.StructuredData(c.Request.Context()))
}
