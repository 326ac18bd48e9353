package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable codes, one per error category.
const (
	CodeUnauthorized = "unauthorized"
	CodeInvalid      = "invalid_request"
	CodeNotFound     = "not_found"
	CodeStore        = "store_error"
)

// Envelope is the wire format of every response. Auth, validation and
// empty-result outcomes keep HTTP 200 for compatibility with the deployed
// mobile clients; only store failures use 500.
type Envelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Result  any    `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(c *gin.Context, result any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Result: result})
}

func Done(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: msg})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{Success: false, Code: CodeUnauthorized, Message: "Missing or wrong API key"})
}

// Missing reports a required parameter that was not supplied.
func Missing(c *gin.Context, what string) {
	c.JSON(http.StatusOK, Envelope{Success: false, Code: CodeInvalid, Message: "Missing " + what})
}

func Invalid(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Envelope{Success: false, Code: CodeInvalid, Message: msg})
}

// Empty maps a zero-row query result.
func Empty(c *gin.Context) {
	c.JSON(http.StatusOK, Envelope{Success: false, Code: CodeNotFound, Message: "Empty"})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Envelope{Success: false, Code: CodeNotFound, Message: msg})
}

func StoreError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Code: CodeStore, Message: err.Error()})
}
