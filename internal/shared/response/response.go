package response

import (
	"github.com/gin-gonic/gin"
)

// Error is the envelope every failed request returns.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error Error `json:"error"`
}

// OK writes the payload as-is with status 200. Successful responses carry the
// bare document/array the endpoint contract names, no wrapper.
func OK(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// Message writes a 200 with {"message": ...}.
func Message(c *gin.Context, message string) {
	c.JSON(200, gin.H{"message": message})
}

// ErrorResponse writes the error envelope.
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, errorBody{Error: Error{Code: code, Message: message}})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, 400, "BAD_REQUEST", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, 404, "NOT_FOUND", message)
}

func UnprocessableEntity(c *gin.Context, message string) {
	ErrorResponse(c, 422, "VALIDATION_FAILED", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, 500, "INTERNAL_SERVER_ERROR", message)
}
