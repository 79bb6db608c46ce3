package middleware

import (
	"net/http"

	"contract_tracker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPanicked = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// Recovery turns a panic in a handler into a 500 with the standard error body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("http")

	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered",
					zap.Any("panic", recovered),
					zap.String("request_id", GetRequestID(c)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(errPanicked.HTTPStatus, errPanicked.ToHTTPError())
			}
		}()

		c.Next()
	}
}
