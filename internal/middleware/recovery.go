package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GenericErrorMessage is the only text a client ever sees for a 500.
const GenericErrorMessage = "An error occurred on the server, please double-check your request!"

// Reporter forwards unhandled errors to an error tracking service.
type Reporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
}

// Recovery is the last line of error handling. Handlers pass failures they do
// not handle themselves with c.Error; panics are recovered here as well. Both
// are reported and answered with a generic 500.
func Recovery(reporter Reporter, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			err, ok := recovered.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", recovered)
			}
			log.WithFields(requestFields(c)).
				WithField("stack", string(debug.Stack())).
				WithError(err).
				Error("panic recovered")
			reporter.Report(c.Request.Context(), err, requestTags(c))
			writeInternalError(c)
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			log.WithFields(requestFields(c)).WithError(e.Err).Error("unhandled error")
			reporter.Report(c.Request.Context(), e.Err, requestTags(c))
		}
		writeInternalError(c)
	}
}

func writeInternalError(c *gin.Context) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": GenericErrorMessage})
}

func requestTags(c *gin.Context) map[string]string {
	return map[string]string{
		"method":     c.Request.Method,
		"route":      c.FullPath(),
		"request_id": requestID(c),
	}
}
