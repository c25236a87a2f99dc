// Package handlers contains HTTP request handlers for the greeting service.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukselcoding/greeting-service/internal/greeting"
)

// Greeter turns an optional name into a greeting statement
type Greeter interface {
	Greet(name *string) (string, error)
}

// GreetRequest represents the POST greeting request body.
// A missing or null name is treated as not provided.
type GreetRequest struct {
	Name *string `json:"name"`
}

// StatementResponse carries either the greeting or the validation reason
type StatementResponse struct {
	Statement string `json:"statement"`
}

// GreetingHandler handles greeting requests
type GreetingHandler struct {
	greeter Greeter
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(greeter Greeter) *GreetingHandler {
	return &GreetingHandler{
		greeter: greeter,
	}
}

// GreetByPath greets the name taken from the path segment
// GET /hello/:name
func (h *GreetingHandler) GreetByPath(c *gin.Context) {
	name := c.Param("name")
	h.respond(c, &name)
}

// GreetByBody greets the name taken from the JSON body
// POST /hello
func (h *GreetingHandler) GreetByBody(c *gin.Context) {
	var req GreetRequest
	// An empty body carries no name at all
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	h.respond(c, req.Name)
}

func (h *GreetingHandler) respond(c *gin.Context, name *string) {
	statement, err := h.greeter.Greet(name)
	if err != nil {
		if errors.Is(err, greeting.ErrNameNotProvided) {
			c.JSON(http.StatusBadRequest, StatementResponse{
				Statement: err.Error(),
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to build greeting",
		})
		return
	}

	c.JSON(http.StatusOK, StatementResponse{
		Statement: statement,
	})
}

// MethodNotAllowed answers requests whose path exists under another method
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error":   "method_not_allowed",
		"message": "Method " + c.Request.Method + " is not allowed on " + c.Request.URL.Path,
	})
}

// NotFound answers requests for unknown routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":   "not_found",
		"message": "No route for " + c.Request.URL.Path,
	})
}
