package handler

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents the error response body.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse writes an error response with a machine-readable code.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// notFoundResponse writes a 404 error response.
func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, "NOT_FOUND", message, 404)
}
