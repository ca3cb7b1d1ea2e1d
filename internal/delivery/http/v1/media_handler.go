package v1

import (
	"errors"
	"fmt"
	"net/http"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/imaging"
	"portfolio-backend/pkg/storage"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	assets       storage.Source
	resumePath   string
	resumeName   string
	profileImage *imaging.Resizer
}

func NewMediaHandler(root gin.IRoutes, assets storage.Source, resumePath, resumeName string, profileImage *imaging.Resizer) {
	handler := &MediaHandler{
		assets:       assets,
		resumePath:   resumePath,
		resumeName:   resumeName,
		profileImage: profileImage,
	}

	root.GET("/resume.pdf", middleware.CacheFor(middleware.ResumeCache), handler.DownloadResume)
	root.GET("/images/profile", handler.ProfileImage)
}

// DownloadResume godoc
// @Summary      Resume PDF
// @Description  Inline by default; ?download=1 sends it as an attachment
// @Tags         content
// @Produce      application/pdf
// @Param        download  query  string  false  "Any value forces Content-Disposition: attachment"
// @Success      200
// @Failure      404  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /resume.pdf [get]
func (h *MediaHandler) DownloadResume(c *gin.Context) {
	data, err := storage.ReadAll(c.Request.Context(), h.assets, h.resumePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			_ = c.Error(apperror.New(http.StatusNotFound, "Resume not available", err))
			return
		}
		_ = c.Error(apperror.Unavailable("Resume temporarily unavailable", err))
		return
	}

	mime, err := storage.CheckContent(h.resumePath, data)
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}

	disposition := "inline"
	if c.Query("download") != "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, h.resumeName))
	c.Data(http.StatusOK, mime, data)
}

// ProfileImage godoc
// @Summary      Profile image
// @Description  Profile photo resized to the requested width, cached per width
// @Tags         content
// @Produce      image/jpeg,image/png
// @Param        w    query     int  false  "Width in pixels (32-1200)"
// @Success      200
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /images/profile [get]
func (h *MediaHandler) ProfileImage(c *gin.Context) {
	width := 0
	if raw := c.Query("w"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 0 {
			_ = c.Error(apperror.BadRequest("w must be a positive integer"))
			return
		}
		width = w
	}

	rendition, err := h.profileImage.Render(width)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			_ = c.Error(apperror.New(http.StatusNotFound, "Image not available", err))
		case errors.Is(err, imaging.ErrInvalidImage):
			_ = c.Error(apperror.Internal(err))
		default:
			_ = c.Error(apperror.Unavailable("Image temporarily unavailable", err))
		}
		return
	}

	c.Header("Cache-Control", middleware.ImmutableAssetCache)
	c.Data(http.StatusOK, rendition.ContentType, rendition.Data)
}
