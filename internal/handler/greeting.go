package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes

	"github.com/labstack/echo/v4" // echo is the web framework used for this project

	"github.com/iliyamo/greeting-service/internal/model" // model defines the response body
)

// GreetingHandler serves the greeting route.  The message is fixed at
// construction time so every request returns identical content.
type GreetingHandler struct {
	Message string // text placed in the message field
}

// NewGreetingHandler constructs a GreetingHandler.  An empty message is
// replaced by model.DefaultMessage.
func NewGreetingHandler(message string) *GreetingHandler {
	return &GreetingHandler{Message: model.NewGreeting(message).Message}
}

// Greet handles GET /api and writes {"message": "..."} with a 200 status.
// HEAD gets the same status and content type without a body.
func (h *GreetingHandler) Greet(c echo.Context) error {
	if c.Request().Method == http.MethodHead {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, model.NewGreeting(h.Message))
}
