package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer    = errorResponse{1000, "internal server error"}
	errorInvalidParameters = errorResponse{1001, "invalid parameters"}
	errorUnauthorized      = errorResponse{1002, "request unauthorized"}
	errorForbidden         = errorResponse{1003, "operation not permitted"}
	errorAccountNotFound   = errorResponse{1004, "account not found"}
	errorConsentNotFound   = errorResponse{1100, "no active consent for this model"}
	errorModelNameRequired = errorResponse{1101, "model_name is required"}
)

// abortWithEncoding writes a stable error body and keeps the underlying
// error server-side only, attached to the gin context for logging.
func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}
