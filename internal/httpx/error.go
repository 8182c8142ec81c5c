package httpx

import "github.com/gin-gonic/gin"

// Error codes surfaced to API clients.
const (
	CodeValidation            = "validation"
	CodeNotFound              = "not_found"
	CodeInsufficientInventory = "insufficient_inventory"
	CodeInternal              = "internal"
)

// ErrorResponse is the standard error body in JSON.
// swagger:model
type ErrorResponse struct {
	// Error message
	// example: menu item 999 not found
	Error string `json:"error"`
	// Machine-readable error kind
	// example: not_found
	Code string `json:"code"`
}

func Error(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{Error: msg, Code: code})
}
