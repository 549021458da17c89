// Package respond writes the JSON envelope shared by every endpoint.
// Success bodies carry {success:true, message, ...payload}; failures carry
// {success:false, error:{status, message}}.
package respond

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// Success writes a success envelope, merging the payload keys into the body
func Success(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes a failure envelope. Domain errors surface their status and
// message verbatim; anything else is logged and masked as a server error.
func Error(c *gin.Context, err error) {
	status := domain.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("REQUEST_FAILED: method=%s path=%s error=%v", c.Request.Method, c.Request.URL.Path, err)
		message = "Unknown Server Error"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"status":  status,
			"message": message,
		},
	})
}

// AbortError writes a failure envelope and stops the handler chain
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
