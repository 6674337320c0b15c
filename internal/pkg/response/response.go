package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes the API error shape: {"error": "<message>"}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

// InvalidBody is the 400 for payloads that fail to bind or validate.
func InvalidBody(c *gin.Context, details map[string]string) {
	if len(details) == 0 {
		Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", details)
}
