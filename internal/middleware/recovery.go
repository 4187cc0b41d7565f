package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/stpnv0/EventCatalog/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a panic into a 500 response. The panic value is stored under
// the "error" key so RequestLogger reports it with the request.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			reason := fmt.Sprint(recovered)
			c.Set("error", "panic: "+reason)

			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("error", reason),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.ErrorResponse{Error: "internal server error"},
			)
		}()

		c.Next()
	}
}
