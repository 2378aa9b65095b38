package contact

import (
	stderrors "errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/server/internal/errors"
	"github.com/devfolio/server/internal/mailer"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// creates the handler for contact form submissions
func Handler(sender Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// validation runs before any provider call
		if req.Name == "" || req.Email == "" || req.Message == "" {
			errors.BadRequest(c, "name, email and message are required", nil)
			return
		}

		if !emailPattern.MatchString(req.Email) {
			errors.BadRequest(c, "Invalid email format", nil)
			return
		}

		id, err := sender.SendContact(c.Request.Context(), mailer.ContactMessage{
			Name:        req.Name,
			Email:       req.Email,
			Message:     req.Message,
			InquiryType: req.InquiryType,
		})
		if err != nil {
			respondSendError(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message: "Thanks for reaching out! I'll get back to you soon.",
			ID:      id,
		})
	}
}

// maps the mailer's error taxonomy onto HTTP statuses
func respondSendError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, mailer.ErrMissingConfig):
		errors.InternalError(c, "contact form is not configured", err)
	case stderrors.Is(err, mailer.ErrInvalidSender):
		errors.UnprocessableEntity(c, "sender domain rejected by the mail provider")
	case stderrors.Is(err, mailer.ErrAuth):
		errors.Unauthorized(c, "mail provider rejected the credentials")
	default:
		errors.BadGateway(c, "failed to deliver the message", err)
	}
}
