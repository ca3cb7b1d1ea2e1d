package v1

import (
	"errors"
	"io"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/actionstate"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxContactFormBytes = 64 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and email it to the site owner. Accepts JSON or form-encoded bodies.
// @Tags         contact
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=actionstate.ActionState}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response{data=actionstate.ActionState}
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response{data=actionstate.ActionState}
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	input, err := bindContactInput(c)
	if err != nil {
		_ = c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	state := h.contactUC.SendContact(c.Request.Context(), actionstate.Empty(), input)

	switch {
	case state.HasFieldErrors():
		response.Fail(c, http.StatusUnprocessableEntity, "Please correct the highlighted fields.", state)
	case state.Succeeded():
		response.Success(c, http.StatusOK, state.Message, state)
	default:
		response.Fail(c, http.StatusBadGateway, state.Message, state)
	}
}

// bindContactInput reads a JSON object or form fields into an untyped map
func bindContactInput(c *gin.Context) (map[string]any, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactFormBytes)

	input := map[string]any{}
	switch c.ContentType() {
	case gin.MIMEJSON:
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxContactFormBytes); err != nil {
			return nil, err
		}
		for k, v := range c.Request.PostForm {
			input[k] = v
		}
	default:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		for k, v := range c.Request.PostForm {
			input[k] = v
		}
	}
	return input, nil
}
