package apperrors

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// includeStack controls whether error responses carry a stack trace.
// Enabled everywhere except production.
var includeStack = true

// SetDebug configures stack exposure; call once at startup with
// env != "production".
func SetDebug(debug bool) {
	includeStack = debug
}

// ErrorResponse is the JSON body for every failed request:
// {message, stack?} with stack only in non-production builds.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

// HandleError maps any error to an HTTP status and JSON body and aborts
// the request. Unknown errors become opaque 500s.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	resp := ErrorResponse{
		Message: appErr.Message,
		Details: appErr.Details,
	}
	if includeStack {
		resp.Stack = string(debug.Stack())
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.AbortWithStatusJSON(status, resp)
}
