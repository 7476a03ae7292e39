package utils

import "github.com/gin-gonic/gin"

// Response is the uniform API envelope.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// ValidationErrorResponse surfaces the per-field error map for form
// submissions. The form is valid iff the map is empty.
func ValidationErrorResponse(c *gin.Context, status int, fieldErrors map[string]string) {
	c.JSON(status, Response{
		Success: false,
		Message: "Validation failed",
		Errors:  fieldErrors,
	})
}
